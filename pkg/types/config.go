package types

import (
	"net/url"
	"strings"
)

// ConfigValueType declares how a Config.Value is interpreted.
type ConfigValueType int32

const (
	ConfigValueTypeString   ConfigValueType = 1
	ConfigValueTypeKeyValue ConfigValueType = 2
)

// Owning-model kinds a config may attach to.
const (
	OwnerTemplate   = "template"
	OwnerWorkload   = "workload"
	OwnerDeployment = "deployment"
)

const (
	ConfigIDSeparator    = "|"
	OwningModelSeparator = "/"
	keyValuePairsSep     = ";"
	keyValueSep          = "="
)

// MakeOwningModel builds the owning-model reference `kind "/" id`. Only the
// template, workload, and deployment kinds exist.
func MakeOwningModel(kind, modelID string) (string, error) {
	switch kind {
	case OwnerTemplate, OwnerWorkload, OwnerDeployment:
		return kind + OwningModelSeparator + modelID, nil
	default:
		return "", NewValidationError("unknown owning model kind %q", kind)
	}
}

// SplitOwningModel splits an owning-model reference into kind and model id.
func SplitOwningModel(owningModel string) (kind, modelID string, err error) {
	parts := strings.SplitN(owningModel, OwningModelSeparator, 2)
	if len(parts) != 2 {
		return "", "", NewValidationError("invalid owning model %q", owningModel)
	}
	switch parts[0] {
	case OwnerTemplate, OwnerWorkload, OwnerDeployment:
		return parts[0], parts[1], nil
	default:
		return "", "", NewValidationError("unknown owning model kind %q", parts[0])
	}
}

// MakeConfigID derives a config id from its owning model and key.
func MakeConfigID(owningModel, key string) string {
	return owningModel + ConfigIDSeparator + key
}

// KeyValuePairs parses a KEY_VALUE config value of the form `k1=v1;k2=v2`.
// Values are URL-decoded so they may carry the pair separators themselves.
func (c *Config) KeyValuePairs() (map[string]string, error) {
	if c.ValueType != ConfigValueTypeKeyValue {
		return nil, NewValidationError("config %q is not a key/value config", c.ID)
	}

	pairs := map[string]string{}
	for _, pair := range strings.Split(c.Value, keyValuePairsSep) {
		key, value, ok := strings.Cut(pair, keyValueSep)
		if !ok {
			return nil, NewValidationError("config %q: malformed pair %q", c.ID, pair)
		}
		decoded, err := url.QueryUnescape(value)
		if err != nil {
			return nil, NewValidationError("config %q: value of %q is not URL-encoded: %v", c.ID, key, err)
		}
		pairs[key] = decoded
	}
	return pairs, nil
}
