package upi

import (
    "net/url"
    "strings"
)

// PayeeParam is the query parameter carrying the payment address in a UPI URI.
const PayeeParam = "pa"

// Interpret classifies decoded QR text. found is false when the decoder saw no
// code. Text that is not an absolute URI falls back to RawText; that is an
// expected branch, not an error.
//
// Like a browser URL parser, surrounding spaces and control characters are
// ignored and tabs and newlines anywhere are dropped. Values returned for
// RawText and NoPaymentAddress are the text as decoded.
func Interpret(text string, found bool) Classification {
    if !found {
        return NotFound()
    }
    u, err := url.Parse(cleanURI(text))
    if err != nil || u.Scheme == "" {
        return RawText(text)
    }
    if pa := queryValue(u.RawQuery, PayeeParam); pa != "" {
        return PaymentAddress(pa)
    }
    return NoPaymentAddress(text)
}

func cleanURI(s string) string {
    s = strings.TrimFunc(s, func(r rune) bool { return r <= ' ' })
    return strings.NewReplacer("\t", "", "\r", "", "\n", "").Replace(s)
}

// queryValue returns the first value of key in a form-encoded query. Unlike
// url.ParseQuery it keeps pairs containing ';' and leaves malformed escapes as
// they are.
func queryValue(rawQuery, key string) string {
    for _, pair := range strings.Split(rawQuery, "&") {
        if pair == "" {
            continue
        }
        k, v, _ := strings.Cut(pair, "=")
        if unescapeQuery(k) == key {
            return unescapeQuery(v)
        }
    }
    return ""
}

func unescapeQuery(s string) string {
    if u, err := url.QueryUnescape(s); err == nil {
        return u
    }
    return strings.ReplaceAll(s, "+", " ")
}
