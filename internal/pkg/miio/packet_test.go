package miio

import (
	"encoding/binary"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "00112233445566778899aabbccddeeff"

func testCreds(t *testing.T) *credentials {
	t.Helper()
	cr, err := newCredentials(testToken)
	require.NoError(t, err)
	return cr
}

func TestNewCredentials(t *testing.T) {
	cr := testCreds(t)
	assert.Len(t, cr.token, 16)
	assert.Len(t, cr.key, 16)
	assert.Len(t, cr.iv, 16)
}

func TestNewCredentialsRejectsBadToken(t *testing.T) {
	_, err := newCredentials("not-hex")
	assert.Error(t, err)

	_, err = newCredentials("00112233")
	assert.Error(t, err)
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	cr := testCreds(t)

	for _, payload := range []string{
		"",
		"x",
		`{"id":1,"method":"get_properties","params":[]}`,
		strings.Repeat("a", 16), // exact block size forces a full padding block
	} {
		data := cr.encrypt([]byte(payload))
		assert.Zero(t, len(data)%16)

		plain, err := cr.decrypt(data)
		require.NoError(t, err)
		assert.Equal(t, payload, string(plain))
	}
}

func TestHelloLayout(t *testing.T) {
	hello := encodeHello()

	require.Len(t, hello, headerLength)
	assert.Equal(t, uint16(0x2131), binary.BigEndian.Uint16(hello[0:2]))
	assert.Equal(t, uint16(headerLength), binary.BigEndian.Uint16(hello[2:4]))
	for i := 4; i < headerLength; i++ {
		assert.Equal(t, byte(0xff), hello[i], "offset %d", i)
	}
}

func TestPacketRoundTrip(t *testing.T) {
	cr := testCreds(t)
	payload := []byte(`{"id":7,"method":"set_motor","params":{"operation":1}}`)

	data := encodePacket(cr, 0x11223344, 1234, payload)

	pkt, err := decodePacket(cr, data)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x11223344), pkt.deviceID)
	assert.Equal(t, uint32(1234), pkt.stamp)
	assert.Equal(t, payload, pkt.payload)
}

func TestDecodeHelloReply(t *testing.T) {
	cr := testCreds(t)

	pkt, err := decodePacket(cr, encodeHello())
	require.NoError(t, err)
	assert.Empty(t, pkt.payload)
}

func TestDecodeRejectsTamperedPayload(t *testing.T) {
	cr := testCreds(t)

	data := encodePacket(cr, 1, 1, []byte(`{"id":1}`))
	data[len(data)-1] ^= 0xff

	_, err := decodePacket(cr, data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "checksum")
}

func TestDecodeRejectsBadMagic(t *testing.T) {
	cr := testCreds(t)

	data := encodePacket(cr, 1, 1, []byte(`{"id":1}`))
	data[0] = 0x00

	_, err := decodePacket(cr, data)
	assert.Error(t, err)
}

func TestDecodeRejectsShortDatagram(t *testing.T) {
	cr := testCreds(t)

	_, err := decodePacket(cr, []byte{0x21, 0x31})
	assert.Error(t, err)
}

func TestDecodeRejectsLengthMismatch(t *testing.T) {
	cr := testCreds(t)

	data := encodePacket(cr, 1, 1, []byte(`{"id":1}`))
	_, err := decodePacket(cr, data[:len(data)-4])
	assert.Error(t, err)
}
