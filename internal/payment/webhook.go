package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrStaleSignature   = errors.New("webhook signature timestamp outside tolerance")
)

// SignatureTolerance is how far a signed ts may be from the receiver's clock.
const SignatureTolerance = 10 * time.Minute

const (
	TopicPayment      = "payment"
	TopicSubscription = "subscription_preapproval"
)

// Notification is the provider's webhook body. Only data.id is trusted, and
// only after the signature checks out; state is always re-read from the
// provider.
type Notification struct {
	ID     any    `json:"id"`
	Type   string `json:"type"`
	Action string `json:"action"`
	Data   struct {
		ID string `json:"id"`
	} `json:"data"`
}

// Manifest is the string the provider signs.
func Manifest(dataID, requestID, ts string) string {
	var b strings.Builder
	if dataID != "" {
		fmt.Fprintf(&b, "id:%s;", strings.ToLower(dataID))
	}
	if requestID != "" {
		fmt.Fprintf(&b, "request-id:%s;", requestID)
	}
	if ts != "" {
		fmt.Fprintf(&b, "ts:%s;", ts)
	}
	return b.String()
}

// Sign returns the x-signature header value for the given parts.
func Sign(secret, dataID, requestID, ts string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(Manifest(dataID, requestID, ts)))
	return fmt.Sprintf("ts=%s,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

// VerifySignature checks an "x-signature: ts=<ts>,v1=<hex>" header and
// rejects signatures whose ts is more than SignatureTolerance away from now.
func VerifySignature(secret, header, requestID, dataID string, now time.Time) error {
	if secret == "" || header == "" {
		return ErrInvalidSignature
	}

	var ts, v1 string
	for _, part := range strings.Split(header, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch k {
		case "ts":
			ts = v
		case "v1":
			v1 = v
		}
	}
	if ts == "" || v1 == "" {
		return ErrInvalidSignature
	}

	got, err := hex.DecodeString(v1)
	if err != nil {
		return ErrInvalidSignature
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(Manifest(dataID, requestID, ts)))
	if !hmac.Equal(got, mac.Sum(nil)) {
		return ErrInvalidSignature
	}

	signedAt, err := parseTimestamp(ts)
	if err != nil {
		return ErrInvalidSignature
	}
	if age := now.Sub(signedAt); age > SignatureTolerance || age < -SignatureTolerance {
		return ErrStaleSignature
	}
	return nil
}

// parseTimestamp accepts Unix seconds or milliseconds.
func parseTimestamp(ts string) (time.Time, error) {
	n, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	if n > 1e12 {
		return time.UnixMilli(n), nil
	}
	return time.Unix(n, 0), nil
}
