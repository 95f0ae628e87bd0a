package hikvision

import (
	"encoding/xml"
	"net/http"

	custerror "github.com/CE-Thesis-2023/ptzctl/internal/error"
)

type Status struct {
	ID            string `xml:"id,omitempty"`
	StatusCode    int    `xml:"statusCode"`
	StatusString  string `xml:"statusString"`
	SubStatusCode string `xml:"subStatusCode"`
}

type AdditionalError struct {
	StatusList []Status `xml:"Status"`
}

type ResponseStatus struct {
	XMLName       xml.Name         `xml:"ResponseStatus"`
	Version       string           `xml:"version,attr"`
	RequestURL    string           `xml:"requestURL"`
	StatusCode    int              `xml:"statusCode"`
	StatusString  string           `xml:"statusString"`
	ID            int              `xml:"id,omitempty"`
	SubStatusCode string           `xml:"subStatusCode"`
	ErrorCode     int              `xml:"errorCode,omitempty"`
	ErrorMsg      string           `xml:"errorMsg,omitempty"`
	AdditionalErr *AdditionalError `xml:"AdditionalErr,omitempty"`
}

func (r *Response) ResponseStatus() (*ResponseStatus, error) {
	var parsedResp ResponseStatus
	if err := xml.Unmarshal(r.Body, &parsedResp); err != nil {
		return nil, err
	}
	return &parsedResp, nil
}

// CheckResponse maps an ISAPI response to a custerror value. Camera never
// calls it; responses are handed back as the device sent them.
func CheckResponse(resp *Response) error {
	if resp.Is2xxSuccessful() {
		return nil
	}

	switch resp.StatusCode {
	case http.StatusBadRequest:
		parsedResp, err := resp.ResponseStatus()
		if err != nil {
			return custerror.ErrorInvalidArgument
		}
		return custerror.FormatInvalidArgument("%s: %s", parsedResp.StatusString, parsedResp.SubStatusCode)
	case http.StatusUnauthorized, http.StatusForbidden:
		return custerror.ErrorPermissionDenied
	case http.StatusNotFound:
		return custerror.ErrorNotFound
	case http.StatusConflict:
		parsedResp, err := resp.ResponseStatus()
		if err != nil {
			return custerror.ErrorAlreadyExists
		}
		return custerror.FormatAlreadyExists(parsedResp.StatusString)
	case http.StatusInternalServerError:
		return custerror.ErrorInternal
	}

	return custerror.FormatInternalError("unexpected status code %d", resp.StatusCode)
}
