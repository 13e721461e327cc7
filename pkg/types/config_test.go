package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeOwningModel(t *testing.T) {
	tests := []struct {
		name    string
		kind    string
		modelID string
		want    string
		wantErr bool
	}{
		{name: "template", kind: OwnerTemplate, modelID: "external-service", want: "template/external-service"},
		{name: "workload", kind: OwnerWorkload, modelID: "fabriq-cloud:fabriq:cribbage", want: "workload/fabriq-cloud:fabriq:cribbage"},
		{name: "deployment", kind: OwnerDeployment, modelID: "fabriq-cloud:fabriq:cribbage:prod", want: "deployment/fabriq-cloud:fabriq:cribbage:prod"},
		{name: "unknown kind", kind: "host", modelID: "h1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MakeOwningModel(tt.kind, tt.modelID)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			kind, modelID, err := SplitOwningModel(got)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, kind)
			assert.Equal(t, tt.modelID, modelID)
		})
	}
}

func TestMakeConfigID(t *testing.T) {
	owningModel, err := MakeOwningModel(OwnerWorkload, "fabriq-cloud:fabriq:cribbage")
	require.NoError(t, err)
	assert.Equal(t, "workload/fabriq-cloud:fabriq:cribbage|image", MakeConfigID(owningModel, "image"))
}

func TestKeyValuePairs(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		want    map[string]string
		wantErr bool
	}{
		{
			name:   "two pairs",
			config: Config{ID: "c", Value: "cpu=1000m;memory=128Mi", ValueType: ConfigValueTypeKeyValue},
			want:   map[string]string{"cpu": "1000m", "memory": "128Mi"},
		},
		{
			name:   "url encoded value",
			config: Config{ID: "c", Value: "args=--verbose%3D1%3B--trace", ValueType: ConfigValueTypeKeyValue},
			want:   map[string]string{"args": "--verbose=1;--trace"},
		},
		{
			name:    "pair without equals",
			config:  Config{ID: "c", Value: "cpu=1000m;memory", ValueType: ConfigValueTypeKeyValue},
			wantErr: true,
		},
		{
			name:    "string typed config",
			config:  Config{ID: "c", Value: "plain", ValueType: ConfigValueTypeString},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.config.KeyValuePairs()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
