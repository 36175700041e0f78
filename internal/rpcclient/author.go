package rpcclient

import (
	"encoding/hex"

	"github.com/aurora-net/aurora-keytool/internal/keys"
)

// InsertKey asks the node to add a key to its keystore via
// author_insertKey. The node re-derives the private key from the secret
// URI; the public key is sent as 0x-prefixed lowercase hex so the node
// can verify the derivation. Params are positional:
// [key_type, suri, public].
func (c *Client) InsertKey(keyType string, suri *keys.Secret, public []byte) error {
	params := []interface{}{keyType, suri.Expose(), "0x" + hex.EncodeToString(public)}
	return c.Call("author_insertKey", params, nil)
}
