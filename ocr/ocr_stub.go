//go:build !ocr

package ocr

// Client stands in for the Tesseract client in builds without OCR.
type Client struct{}

// New always fails with ErrOCRNotEnabled.
func New() (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// Close does nothing; a nil receiver is fine.
func (c *Client) Close() error { return nil }

func (c *Client) Words([]byte) ([]Word, error) { return nil, ErrOCRNotEnabled }

func (c *Client) SetLanguage(string) error { return ErrOCRNotEnabled }
