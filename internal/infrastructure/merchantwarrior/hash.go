package merchantwarrior

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// URLHash signs the callback URLs:
// md5(lower(md5(passphrase) + merchantUUID + returnURL + notifyURL)).
func URLHash(passphrase, merchantUUID, returnURL, notifyURL string) string {
	return signed(passphrase, merchantUUID, returnURL, notifyURL)
}

// TransactionHash signs the amount and currency:
// md5(lower(md5(passphrase) + merchantUUID + amount + currency)).
func TransactionHash(passphrase, merchantUUID, amount, currency string) string {
	return signed(passphrase, merchantUUID, amount, currency)
}

func signed(passphrase string, parts ...string) string {
	var b strings.Builder
	b.WriteString(md5Hex(passphrase))
	for _, p := range parts {
		b.WriteString(p)
	}
	return md5Hex(strings.ToLower(b.String()))
}

func md5Hex(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}
