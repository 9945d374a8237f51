package jazzcash

import (
	"bytes"
	"encoding/json"
)

// dispatch signs the payload, posts it to the gateway and decodes the
// response body. It returns the decoded body on success, or a typed error:
// ServiceDown when no usable response was obtained, otherwise whatever
// classify derives from the embedded response code.
//
// The gateway signals business rejections two ways: some arrive as HTTP
// errors whose body still carries pp_ResponseCode, others as 2xx responses
// with a non-success code embedded. Both paths classify by the embedded
// code, never by the HTTP status alone.
func (c *Client) dispatch(path string, payload map[string]string) (map[string]any, *Error) {
	hash, hashErr := secureHash(c.cfg.SharedSecret, payload)
	if hashErr != nil {
		return nil, hashErr
	}
	payload[fieldSecureHash] = hash

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, newError(ErrSystemError, "encode payload: "+err.Error())
	}

	url := c.cfg.BaseURL + path
	c.debugf("request url: %s", url)
	c.debugf("request payload: %s", body)

	status, respBody, err := c.http.Post(url, bytes.NewReader(body))
	if err != nil {
		c.debugf("transport error: %v", err)
		return nil, newError(ErrServiceDown, err.Error())
	}
	c.debugf("response status: %d", status)
	c.debugf("response body: %s", respBody)

	var raw map[string]any
	if err := json.Unmarshal(respBody, &raw); err != nil {
		return nil, newError(ErrServiceDown, "unparsable gateway response: "+err.Error())
	}

	code := stringField(raw, fieldResponseCode)
	if gwErr := classify(code, stringField(raw, fieldResponseMessage)); gwErr != nil {
		return nil, gwErr
	}
	return raw, nil
}
