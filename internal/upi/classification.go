package upi

// Kind tags a Classification.
type Kind string

const (
    KindNotFound         Kind = "not_found"
    KindPaymentAddress   Kind = "payment_address"
    KindNoPaymentAddress Kind = "no_payment_address"
    KindRawText          Kind = "raw_text"
)

// Classification is the interpreted result of one QR decode attempt.
//
// Value holds the payment address for KindPaymentAddress, the decoded text for
// KindNoPaymentAddress and KindRawText, and is empty for KindNotFound.
type Classification struct {
    Kind  Kind   `json:"kind"`
    Value string `json:"value,omitempty"`
}

func NotFound() Classification {
    return Classification{Kind: KindNotFound}
}

func PaymentAddress(pa string) Classification {
    return Classification{Kind: KindPaymentAddress, Value: pa}
}

func NoPaymentAddress(text string) Classification {
    return Classification{Kind: KindNoPaymentAddress, Value: text}
}

func RawText(text string) Classification {
    return Classification{Kind: KindRawText, Value: text}
}
