package camera

import (
	"encoding/binary"
	"encoding/json"
	"net"
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

/*
 *   Remote-storage (NAS) link management. Recorded video can be synced
 *   to an SMB share; the firmware takes the share address as a single
 *   integer with the IPv4 octets in reversed order.
 */

const (
	shareTypeSMB   = 1
	shareWorkgroup = "WORKGROUP"
)

// encodeShareAddr packs an IPv4 address into the 32-bit integer form the
// firmware expects: octets reversed, then read big-endian (so the low
// octet of the address ends up in the high byte). This is a wire quirk;
// do not simplify it.
func encodeShareAddr(ip net.IP) (uint32, error) {
	v4 := ip.To4()
	if v4 == nil {
		return 0, errors.Errorf("share address %s is not IPv4", ip)
	}

	reversed := []byte{v4[3], v4[2], v4[1], v4[0]}
	return binary.BigEndian.Uint32(reversed), nil
}

// SetNASConfig configures the remote-storage link. When the share URI
// uses the smb scheme, its host is resolved locally before any request is
// sent; other schemes send no share block at all.
func (c *Camera) SetNASConfig(state NASState, shareURI string, interval NASSyncInterval, retention NASRetention) error {
	if !state.valid() {
		return errors.Errorf("unsupported NAS state: %d", state)
	}
	if !interval.valid() {
		return errors.Errorf("unsupported sync interval: %d", interval)
	}
	if !retention.valid() {
		return errors.Errorf("unsupported retention time: %d", retention)
	}

	params := map[string]interface{}{
		"state":                int(state),
		"sync_interval":        int(interval),
		"video_retention_time": int(retention),
	}

	share, err := url.Parse(shareURI)
	if err != nil {
		return errors.Wrapf(err, "parsing share URI %q", shareURI)
	}

	if share.Scheme == "smb" {
		host := share.Hostname()
		ip, err := c.resolve(host)
		if err != nil {
			return errors.Wrapf(err, "resolving share host %s", host)
		}

		addr, err := encodeShareAddr(ip)
		if err != nil {
			return err
		}

		var user, pass string
		if share.User != nil {
			user = share.User.Username()
			pass, _ = share.User.Password()
		}

		params["share"] = map[string]interface{}{
			"type":  shareTypeSMB,
			"name":  host,
			"addr":  addr,
			"dir":   strings.TrimLeft(share.Path, "/"),
			"group": shareWorkgroup,
			"user":  user,
			"pass":  pass,
		}
	}

	_, err = c.transport.Send("nas_set_config", params)
	return errors.Wrap(err, "setting NAS config")
}

// NASConfig fetches the current remote-storage settings.
func (c *Camera) NASConfig() (json.RawMessage, error) {
	raw, err := c.transport.Send("nas_get_config", map[string]interface{}{})
	return raw, errors.Wrap(err, "getting NAS config")
}

// ClearNASDir empties the remote-storage directory.
func (c *Camera) ClearNASDir() error {
	_, err := c.transport.Send("nas_clear_dir", []interface{}{[]interface{}{}})
	return errors.Wrap(err, "clearing NAS directory")
}
