package pipeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/PolarWolf314/rsatrace/internal/codec"
	kerrors "github.com/PolarWolf314/rsatrace/internal/errors"
	"github.com/PolarWolf314/rsatrace/internal/keys"
	"github.com/PolarWolf314/rsatrace/internal/tracer"
)

// Party identifies one side of the chat.
type Party string

const (
	Alice Party = "alice"
	Bob   Party = "bob"
)

// ParseParty accepts "alice" or "bob" in any case.
func ParseParty(s string) (Party, error) {
	switch Party(strings.ToLower(strings.TrimSpace(s))) {
	case Alice:
		return Alice, nil
	case Bob:
		return Bob, nil
	default:
		return "", fmt.Errorf("%q: %w", s, kerrors.ErrUnknownParty)
	}
}

// Other returns the counterpart of p.
func (p Party) Other() Party {
	if p == Alice {
		return Bob
	}
	return Alice
}

// Title returns the display name, e.g. "Alice".
func (p Party) Title() string {
	if p == "" {
		return ""
	}
	return strings.ToUpper(string(p[:1])) + string(p[1:])
}

// EncryptStep records the encryption of one letter.
type EncryptStep struct {
	Index        int    `json:"index"`
	SourceChar   string `json:"source_char"`
	SourceNum    int64  `json:"source_num"`
	ResultCipher int64  `json:"result_cipher"`
	Trace        string `json:"trace"`
}

// DecryptStep records the decryption of one ciphertext number.
type DecryptStep struct {
	Index        int    `json:"index"`
	CipherNum    int64  `json:"cipher_num"`
	RecoveredNum int64  `json:"recovered_num"`
	Trace        string `json:"trace"`
}

// Message is the full record of one send action.
type Message struct {
	Sender        Party         `json:"from"`
	Recipient     Party         `json:"to"`
	Plaintext     string        `json:"plaintext"`
	FilteredText  string        `json:"filtered_plaintext"`
	PlainNums     []int64       `json:"plain_nums"`
	CipherNums    []int64       `json:"cipher_nums"`
	DecryptedNums []int64       `json:"decrypted_nums"`
	DecryptedText string        `json:"decrypted_text"`
	EncSteps      []EncryptStep `json:"steps_enc"`
	DecSteps      []DecryptStep `json:"steps_dec"`
	SentAt        time.Time     `json:"sent_at"`
}

// RoundTripOK reports whether decryption recovered the filtered plaintext.
func (m Message) RoundTripOK() bool {
	return m.DecryptedText == m.FilteredText
}

// WasFiltered reports whether characters outside A–Z were dropped from the input.
func (m Message) WasFiltered() bool {
	return m.FilteredText != strings.ToUpper(m.Plaintext)
}

// Transform encrypts rawText letter by letter with recipient's public key,
// decrypts it again with recipient's private key, and returns every step.
func Transform(rawText string, recipient keys.KeyPair) Message {
	filtered := codec.Filter(rawText)

	msg := Message{
		Plaintext:     rawText,
		FilteredText:  filtered,
		PlainNums:     make([]int64, 0, len(filtered)),
		CipherNums:    make([]int64, 0, len(filtered)),
		DecryptedNums: make([]int64, 0, len(filtered)),
		EncSteps:      make([]EncryptStep, 0, len(filtered)),
		DecSteps:      make([]DecryptStep, 0, len(filtered)),
	}

	for _, r := range filtered {
		// Filter only keeps A–Z, so the conversion always succeeds.
		num, _ := codec.CharToNum(r)
		msg.PlainNums = append(msg.PlainNums, num)
	}

	n, e := recipient.PublicKey()
	for i, num := range msg.PlainNums {
		cipher, trace := tracer.ModExpTrace(num, e, n)
		msg.CipherNums = append(msg.CipherNums, cipher)
		msg.EncSteps = append(msg.EncSteps, EncryptStep{
			Index:        i + 1,
			SourceChar:   string(codec.NumToChar(num)),
			SourceNum:    num,
			ResultCipher: cipher,
			Trace:        trace,
		})
	}

	n, d := recipient.PrivateKey()
	var decrypted strings.Builder
	for i, cipher := range msg.CipherNums {
		recovered, trace := tracer.ModExpTrace(cipher, d, n)
		msg.DecryptedNums = append(msg.DecryptedNums, recovered)
		decrypted.WriteRune(codec.NumToChar(recovered))
		msg.DecSteps = append(msg.DecSteps, DecryptStep{
			Index:        i + 1,
			CipherNum:    cipher,
			RecoveredNum: recovered,
			Trace:        trace,
		})
	}
	msg.DecryptedText = decrypted.String()

	return msg
}
