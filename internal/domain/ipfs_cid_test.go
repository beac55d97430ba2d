package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	cidV0 = "QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG"
	cidV1 = "bafybeigdyrzt5sfp7udm7hu76uh7y26nf3efuylqabf3oclgtqy55fbzdi"
)

func TestResolveCID(t *testing.T) {
	tests := []struct {
		name    string
		uri     string
		want    string
		wantErr bool
	}{
		{name: "ipfs scheme v0", uri: "ipfs://" + cidV0, want: cidV0},
		{name: "ipfs scheme v1", uri: "ipfs://" + cidV1, want: cidV1},
		{name: "bare cid", uri: cidV0, want: cidV0},
		{name: "gateway path", uri: "https://ipfs.io/ipfs/" + cidV1 + "/metadata.json", want: cidV1},
		{name: "surrounding spaces", uri: "  ipfs://" + cidV0 + " ", want: cidV0},
		{name: "plain https link", uri: "https://example.com/metadata.json", wantErr: true},
		{name: "empty scheme", uri: "ipfs://", wantErr: true},
		{name: "garbage", uri: "not-a-cid", wantErr: true},
		{name: "empty", uri: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveCID(tt.uri)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIpfsURI(t *testing.T) {
	assert.Equal(t, "ipfs://"+cidV0, IpfsURI(cidV0))
	got, err := ResolveCID(IpfsURI(cidV1))
	require.NoError(t, err)
	assert.Equal(t, cidV1, got)
}
