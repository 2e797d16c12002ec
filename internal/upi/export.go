package upi

// Message is the line shown to the user for c.
func (c Classification) Message() string {
    switch c.Kind {
    case KindPaymentAddress:
        return "UPI ID: " + c.Value
    case KindNoPaymentAddress:
        return "No 'pa' parameter found in QR."
    case KindRawText:
        return "QR Code Data: " + c.Value
    default:
        return "No QR code found in this laptop screenshot."
    }
}

// ClipboardText returns what the copy button should copy. Only a payment address
// is ever copied.
func (c Classification) ClipboardText() (string, bool) {
    if c.Kind != KindPaymentAddress || c.Value == "" {
        return "", false
    }
    return c.Value, true
}
