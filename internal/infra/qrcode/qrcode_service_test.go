package qrcode

import (
	"encoding/json"
	"testing"

	"glbiashara/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateConnectQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GenerateConnectQR(entity.OrgKindClub, 42)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GenerateConnectQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M")

			qrBytes, err := service.GenerateConnectQR(entity.OrgKindProvider, 7)
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_ParseConnectQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	t.Run("Valid QR data", func(t *testing.T) {
		data := ConnectQRData{
			Kind:     "institution",
			EntityID: 15,
			Type:     "connect",
		}
		jsonData, err := json.Marshal(data)
		require.NoError(t, err)

		kind, entityID, err := service.ParseConnectQR(string(jsonData))
		require.NoError(t, err)
		assert.Equal(t, entity.OrgKindInstitution, kind)
		assert.Equal(t, int64(15), entityID)
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		_, _, err := service.ParseConnectQR("not json")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to unmarshal")
	})

	t.Run("Wrong type field", func(t *testing.T) {
		data := ConnectQRData{
			Kind:     "club",
			EntityID: 3,
			Type:     "subscription",
		}
		jsonData, err := json.Marshal(data)
		require.NoError(t, err)

		_, _, err = service.ParseConnectQR(string(jsonData))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid QR code type")
	})

	t.Run("Unknown entity kind", func(t *testing.T) {
		data := ConnectQRData{
			Kind:     "restaurant",
			EntityID: 3,
			Type:     "connect",
		}
		jsonData, err := json.Marshal(data)
		require.NoError(t, err)

		_, _, err = service.ParseConnectQR(string(jsonData))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid entity kind")
	})

	t.Run("Non-positive entity id", func(t *testing.T) {
		data := ConnectQRData{
			Kind:     "club",
			EntityID: 0,
			Type:     "connect",
		}
		jsonData, err := json.Marshal(data)
		require.NoError(t, err)

		_, _, err = service.ParseConnectQR(string(jsonData))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid entity id")
	})
}

func TestQRCodeService_RoundTrip(t *testing.T) {
	service := NewQRCodeService(256, "M")

	data := ConnectQRData{
		Kind:     "provider",
		EntityID: 9,
		Type:     "connect",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	kind, entityID, err := service.ParseConnectQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, entity.OrgKindProvider, kind)
	assert.Equal(t, int64(9), entityID)
}
