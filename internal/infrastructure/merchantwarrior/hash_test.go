package merchantwarrior

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func md5Of(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

func TestTransactionHash(t *testing.T) {
	want := md5Of(strings.ToLower(md5Of("secret") + "MUUID-ABC" + "279.98" + "AUD"))

	got := TransactionHash("secret", "MUUID-ABC", "279.98", "AUD")

	assert.Equal(t, want, got)
	assert.Len(t, got, 32)
	assert.Equal(t, got, TransactionHash("secret", "MUUID-ABC", "279.98", "AUD"))
}

func TestURLHashLowercasesWholeInput(t *testing.T) {
	upper := URLHash("pass", "UUID", "https://SHOP.example/checkout/success", "https://SHOP.example/api/orders/notify")
	lower := URLHash("pass", "uuid", "https://shop.example/checkout/success", "https://shop.example/api/orders/notify")

	assert.Equal(t, lower, upper)
	assert.Equal(t,
		md5Of(md5Of("pass")+"uuidhttps://shop.example/checkout/successhttps://shop.example/api/orders/notify"),
		upper,
	)
}

func TestHashPassphraseIsCaseSensitive(t *testing.T) {
	// only the concatenation is lowercased; the passphrase digest differs by case
	assert.NotEqual(t,
		TransactionHash("Secret", "uuid", "1.00", "AUD"),
		TransactionHash("secret", "uuid", "1.00", "AUD"),
	)
}

func TestHashDependsOnEveryInput(t *testing.T) {
	base := TransactionHash("p", "m", "10.00", "AUD")
	assert.NotEqual(t, base, TransactionHash("p", "m", "10.01", "AUD"))
	assert.NotEqual(t, base, TransactionHash("p", "m", "10.00", "USD"))
	assert.NotEqual(t, base, TransactionHash("p", "n", "10.00", "AUD"))
}
