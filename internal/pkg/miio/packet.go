package miio

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/md5"
	"encoding/binary"
	"encoding/hex"

	"github.com/pkg/errors"
)

/*
 *  miIO binary framing, per the MiHome protocol:
 *
 *    0                   1                   2                   3
 *   +-------------------------------+-------------------------------+
 *   | Magic number = 0x2131         | Packet length (incl. header)  |
 *   +---------------------------------------------------------------+
 *   | Unknown (0, or 0xffffffff in hello)                           |
 *   +---------------------------------------------------------------+
 *   | Device ID                                                     |
 *   +---------------------------------------------------------------+
 *   | Stamp                                                         |
 *   +---------------------------------------------------------------+
 *   | MD5 checksum (or device token in the hello reply)             |
 *   +---------------------------------------------------------------+
 *   | Optional variable-sized payload, AES-128-CBC encrypted        |
 *   +---------------------------------------------------------------+
 */

const (
	packetMagic  uint16 = 0x2131
	headerLength        = 32
	helloFill    uint32 = 0xffffffff
)

// credentials holds the 16-byte device token and the AES key/iv pair
// derived from it: key = MD5(token), iv = MD5(key || token).
type credentials struct {
	token []byte
	key   []byte
	iv    []byte
}

func newCredentials(hexToken string) (*credentials, error) {
	token, err := hex.DecodeString(hexToken)
	if err != nil {
		return nil, errors.Wrap(err, "decoding device token")
	}
	if len(token) != 16 {
		return nil, errors.Errorf("device token must be 16 bytes, got %d", len(token))
	}

	keygen := md5.New()
	keygen.Write(token)
	key := keygen.Sum(nil)

	ivgen := md5.New()
	ivgen.Write(key)
	ivgen.Write(token)
	iv := ivgen.Sum(nil)

	return &credentials{token: token, key: key, iv: iv}, nil
}

// encrypt applies PKCS#7 padding and AES-128-CBC
func (cr *credentials) encrypt(payload []byte) []byte {
	block, err := aes.NewCipher(cr.key)
	if err != nil {
		// key is always 16 bytes; NewCipher cannot fail
		panic(err)
	}

	padding := aes.BlockSize - len(payload)%aes.BlockSize
	data := make([]byte, len(payload), len(payload)+padding)
	copy(data, payload)
	for i := 0; i < padding; i++ {
		data = append(data, byte(padding))
	}

	cipher.NewCBCEncrypter(block, cr.iv).CryptBlocks(data, data)
	return data
}

func (cr *credentials) decrypt(data []byte) ([]byte, error) {
	if len(data) == 0 || len(data)%aes.BlockSize != 0 {
		return nil, errors.Errorf("encrypted payload has invalid length %d", len(data))
	}

	block, err := aes.NewCipher(cr.key)
	if err != nil {
		panic(err)
	}

	plain := make([]byte, len(data))
	cipher.NewCBCDecrypter(block, cr.iv).CryptBlocks(plain, data)

	padding := int(plain[len(plain)-1])
	if padding == 0 || padding > aes.BlockSize || padding > len(plain) {
		return nil, errors.New("invalid payload padding")
	}

	return plain[:len(plain)-padding], nil
}

// packet is one decoded miIO datagram
type packet struct {
	deviceID uint32
	stamp    uint32
	payload  []byte
}

// encodeHello builds the handshake datagram: a bare header with every
// variable field set to 0xffffffff.
func encodeHello() []byte {
	buf := new(bytes.Buffer)
	binary.Write(buf, binary.BigEndian, packetMagic)
	binary.Write(buf, binary.BigEndian, uint16(headerLength))
	for i := 0; i < 7; i++ {
		binary.Write(buf, binary.BigEndian, helloFill)
	}

	return buf.Bytes()
}

// encodePacket frames and encrypts a request payload for an established
// session. The checksum is MD5(header || token || encrypted payload).
func encodePacket(cr *credentials, deviceID, stamp uint32, payload []byte) []byte {
	encrypted := cr.encrypt(payload)

	buf := new(bytes.Buffer)
	binary.Write(buf, binary.BigEndian, packetMagic)
	binary.Write(buf, binary.BigEndian, uint16(headerLength+len(encrypted)))
	binary.Write(buf, binary.BigEndian, uint32(0))
	binary.Write(buf, binary.BigEndian, deviceID)
	binary.Write(buf, binary.BigEndian, stamp)

	sum := md5.New()
	sum.Write(buf.Bytes())
	sum.Write(cr.token)
	sum.Write(encrypted)
	buf.Write(sum.Sum(nil))

	buf.Write(encrypted)
	return buf.Bytes()
}

// decodePacket parses and, when a payload is present, authenticates and
// decrypts a received datagram.
func decodePacket(cr *credentials, data []byte) (*packet, error) {
	if len(data) < headerLength {
		return nil, errors.Errorf("datagram too short: %d bytes", len(data))
	}

	if magic := binary.BigEndian.Uint16(data[0:2]); magic != packetMagic {
		return nil, errors.Errorf("bad packet magic 0x%04x", magic)
	}

	length := int(binary.BigEndian.Uint16(data[2:4]))
	if length != len(data) {
		return nil, errors.Errorf("packet length field %d does not match datagram size %d", length, len(data))
	}

	pkt := &packet{
		deviceID: binary.BigEndian.Uint32(data[8:12]),
		stamp:    binary.BigEndian.Uint32(data[12:16]),
	}

	if length == headerLength {
		// hello reply carries no payload
		return pkt, nil
	}

	sum := md5.New()
	sum.Write(data[0:16])
	sum.Write(cr.token)
	sum.Write(data[headerLength:])
	if !bytes.Equal(sum.Sum(nil), data[16:headerLength]) {
		return nil, errors.New("packet checksum mismatch")
	}

	payload, err := cr.decrypt(data[headerLength:])
	if err != nil {
		return nil, err
	}
	pkt.payload = payload

	return pkt, nil
}
