package usecase_test

import (
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capitaldao/veto-cli/internal/adapters/abi"
	"github.com/capitaldao/veto-cli/internal/domain"
	"github.com/capitaldao/veto-cli/internal/domain/models"
	"github.com/capitaldao/veto-cli/internal/usecase"
)

const testPlugin = "0x1111111111111111111111111111111111111111"

func writeProposalFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "proposal.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseProposalFile(t *testing.T) {
	path := writeProposalFile(t, `
title: Raise the threshold
summary: Bump support to 60%
description: |
  Longer text.
resources:
  - name: Forum
    url: https://forum.example.org/t/1
start: 2024-05-01T00:00:00Z
end: 2024-05-08T00:00:00Z
creator_vote: yes
execute_on_pass: true
actions:
  - to: "0x2222222222222222222222222222222222222222"
    value: "1000"
    data: "0x"
    fail_safe: true
  - update_settings:
      voting_mode: EarlyExecution
      support_threshold: 0.6
      min_participation: 0.2
      min_duration: 72h
  - mint:
      token: "0x3333333333333333333333333333333333333333"
      address: "0x4444444444444444444444444444444444444444"
      amount: "500"
`)

	file, err := usecase.ParseProposalFile(path)
	require.NoError(t, err)

	meta := file.Metadata()
	assert.Equal(t, "Raise the threshold", meta.Title)
	assert.Equal(t, "Longer text.\n", meta.Description)
	require.Len(t, meta.Resources, 1)
	assert.Equal(t, "Forum", meta.Resources[0].Name)

	enc := abi.NewEncoder(discardLogger())
	params, err := file.Params(testPlugin, "ipfs://bafy", enc)
	require.NoError(t, err)

	assert.Equal(t, testPlugin, params.PluginAddress)
	assert.Equal(t, "ipfs://bafy", params.MetadataURI)
	assert.Equal(t, models.VoteYes, params.CreatorVote)
	assert.True(t, params.ExecuteOnPass)
	require.NotNil(t, params.StartDate)
	require.NotNil(t, params.EndDate)
	assert.Equal(t, time.Date(2024, 5, 8, 0, 0, 0, 0, time.UTC), params.EndDate.UTC())

	require.Len(t, params.Actions, 3)
	assert.Equal(t, []bool{true, false, false}, params.FailSafeActions)
	assert.Equal(t, big.NewInt(1000), params.Actions[0].Value)
	assert.Empty(t, params.Actions[0].Data)

	dec := abi.NewDecoder(discardLogger())
	settings, err := dec.UpdatePluginSettingsAction(params.Actions[1].Data)
	require.NoError(t, err)
	assert.Equal(t, models.VotingModeEarlyExecution, settings.VotingMode)
	assert.Equal(t, uint64(72*3600), settings.MinDuration)
	assert.InDelta(t, 0.6, settings.SupportThreshold, 1e-9)

	mint, err := dec.MintTokenAction(params.Actions[2].Data)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(500), mint.Amount)
}

func TestProposalFileParams_MetadataURIOverride(t *testing.T) {
	file := &usecase.ProposalFile{MetadataURI: "ipfs://fixed"}
	params, err := file.Params(testPlugin, "ipfs://pinned", abi.NewEncoder(discardLogger()))
	require.NoError(t, err)
	assert.Equal(t, "ipfs://fixed", params.MetadataURI)
	assert.Nil(t, params.FailSafeActions)
	assert.Nil(t, params.StartDate)
}

func TestProposalFileParams_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    usecase.ProposalFile
		wantErr string
		wantIs  error
	}{
		{
			name:    "bad target",
			file:    usecase.ProposalFile{Actions: []usecase.ProposalFileAction{{To: "nope"}}},
			wantErr: "action 1",
			wantIs:  domain.ErrInvalidAddress,
		},
		{
			name:    "bad data",
			file:    usecase.ProposalFile{Actions: []usecase.ProposalFileAction{{To: testPlugin, Data: "zz"}}},
			wantErr: "invalid data",
		},
		{
			name:    "bad date",
			file:    usecase.ProposalFile{Start: "tomorrow"},
			wantErr: "invalid start date",
		},
		{
			name:    "bad vote",
			file:    usecase.ProposalFile{CreatorVote: "maybe"},
			wantErr: "invalid vote",
		},
		{
			name: "bad voting mode",
			file: usecase.ProposalFile{Actions: []usecase.ProposalFileAction{{
				UpdateSettings: &usecase.ProposalFileSettings{VotingMode: "Fast", MinDuration: "1h"},
			}}},
			wantErr: "unknown voting mode",
		},
		{
			name: "negative min_duration",
			file: usecase.ProposalFile{Actions: []usecase.ProposalFileAction{{
				UpdateSettings: &usecase.ProposalFileSettings{MinDuration: "-1h"},
			}}},
			wantErr: "invalid min_duration",
		},
		{
			name: "fractional min_duration",
			file: usecase.ProposalFile{Actions: []usecase.ProposalFileAction{{
				UpdateSettings: &usecase.ProposalFileSettings{MinDuration: "1500ms"},
			}}},
			wantErr: "whole number of seconds",
		},
		{
			name:    "start before 1970",
			file:    usecase.ProposalFile{Start: "1960-01-01T00:00:00Z"},
			wantErr: "before 1970",
		},
		{
			name: "bad mint amount",
			file: usecase.ProposalFile{Actions: []usecase.ProposalFileAction{{
				Mint: &usecase.ProposalFileMint{Token: testPlugin, Address: testPlugin, Amount: "1.5"},
			}}},
			wantIs: domain.ErrInvalidAmount,
		},
	}

	enc := abi.NewEncoder(discardLogger())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.file.Params(testPlugin, "", enc)
			require.Error(t, err)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
			}
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			}
		})
	}
}

func TestParseProposalFile_Invalid(t *testing.T) {
	_, err := usecase.ParseProposalFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read file")

	_, err = usecase.ParseProposalFile(writeProposalFile(t, "title: [unterminated"))
	assert.ErrorContains(t, err, "failed to parse YAML")

	_, err = usecase.ParseProposalFile(writeProposalFile(t, "summary: no title"))
	assert.ErrorContains(t, err, "needs a title")
}
