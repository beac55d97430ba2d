package client

import (
	"github.com/capitaldao/veto-cli/internal/adapters/abi"
	"github.com/capitaldao/veto-cli/internal/domain"
	"github.com/capitaldao/veto-cli/internal/domain/config"
	"github.com/capitaldao/veto-cli/internal/domain/models"
)

// MultisigClient serves the multisig and veto multisig plugins
type MultisigClient struct {
	pluginType domain.PluginType
	encoding   *MultisigEncoding
	decoding   *MultisigDecoding
}

// NewMultisigClient creates a new MultisigClient
func NewMultisigClient(pluginType domain.PluginType, deps Deps) *MultisigClient {
	deps = deps.withDefaults()
	return &MultisigClient{
		pluginType: pluginType,
		encoding:   &MultisigEncoding{encoder: abi.NewEncoder(deps.Log), network: deps.Config.Network},
		decoding:   &MultisigDecoding{decoder: abi.NewDecoder(deps.Log)},
	}
}

func (c *MultisigClient) PluginType() domain.PluginType { return c.pluginType }
func (c *MultisigClient) Family() domain.PluginFamily   { return domain.PluginFamilyMultisig }
func (*MultisigClient) isPluginClient()                 {}

func (c *MultisigClient) Encoding() *MultisigEncoding { return c.encoding }
func (c *MultisigClient) Decoding() *MultisigDecoding { return c.decoding }

// MultisigEncoding builds membership and settings actions of a multisig plugin
type MultisigEncoding struct {
	encoder *abi.Encoder
	network *config.Network
}

func (e *MultisigEncoding) AddAddressesAction(params models.MembersParams) (*models.DaoAction, error) {
	return e.encoder.AddAddressesAction(params)
}

func (e *MultisigEncoding) RemoveAddressesAction(params models.MembersParams) (*models.DaoAction, error) {
	return e.encoder.RemoveAddressesAction(params)
}

func (e *MultisigEncoding) UpdateMultisigVotingSettings(params models.UpdateMultisigSettingsParams) (*models.DaoAction, error) {
	return e.encoder.UpdateMultisigVotingSettings(params)
}

func (e *MultisigEncoding) PluginInstallItem(params models.MultisigPluginInstall) (*models.PluginInstallItem, error) {
	return e.encoder.MultisigInstallItem(params, e.network)
}

// MultisigDecoding reads back multisig actions
type MultisigDecoding struct {
	decoder *abi.Decoder
}

func (d *MultisigDecoding) AddAddressesAction(data []byte) ([]string, error) {
	return d.decoder.AddAddressesAction(data)
}

func (d *MultisigDecoding) RemoveAddressesAction(data []byte) ([]string, error) {
	return d.decoder.RemoveAddressesAction(data)
}

func (d *MultisigDecoding) UpdateMultisigVotingSettings(data []byte) (*models.MultisigVotingSettings, error) {
	return d.decoder.UpdateMultisigVotingSettings(data)
}

func (d *MultisigDecoding) FindInterface(data []byte) *models.InterfaceParams {
	return d.decoder.FindInterface(data)
}

// DecodeCall decodes calldata of any known function for display
func (d *MultisigDecoding) DecodeCall(data []byte) *abi.DecodedCall {
	return d.decoder.DecodeCall(data)
}
