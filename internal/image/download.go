package imagepkg

import (
    "bytes"
    "image"

    "github.com/shashanksharma45/image-merge/internal/util"
)

// DownloadImage fetches url with f and decodes the body.
func DownloadImage(f util.Fetcher, url string) (image.Image, error) {
    body, err := f.Get(url)
    if err != nil {
        return nil, err
    }
    return DecodeImage(bytes.NewReader(body))
}
