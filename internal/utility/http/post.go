package http

import (
	"fmt"
	"io"
	"net/http"
)

// Post issues a POST and returns the status code and full body. A non-2xx
// status is not an error here: the payment gateway returns structured bodies
// on HTTP errors too, and callers classify those by their embedded response
// code. Only transport-level failures come back as err.
func (hc *Client) Post(url string, body io.Reader, opts ...RequestOption) (int, []byte, error) {
	req, err := http.NewRequest("POST", url, body)
	if err != nil {
		return 0, nil, err
	}

	hc.applyDefaultHeaders(req)

	for _, opt := range opts {
		opt(req)
	}

	resp, err := hc.client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			fmt.Println("Something went wrong while closing response")
		}
	}(resp.Body)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}

	return resp.StatusCode, respBody, nil
}
