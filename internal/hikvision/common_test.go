package hikvision

import (
	"errors"
	"testing"

	custerror "github.com/CE-Thesis-2023/ptzctl/internal/error"
)

const badRequestBody = `<?xml version="1.0" encoding="UTF-8"?>
<ResponseStatus version="2.0" xmlns="http://www.isapi.org/ver20/XMLSchema">
<requestURL>/ISAPI/PTZCtrl/channels/1/Momentary</requestURL>
<statusCode>4</statusCode>
<statusString>Invalid Operation</statusString>
<subStatusCode>invalidOperation</subStatusCode>
</ResponseStatus>`

func TestCheckResponse(t *testing.T) {
	tests := []struct {
		name string
		resp *Response
		want error
	}{
		{name: "ok", resp: &Response{StatusCode: 200}},
		{name: "bad request", resp: &Response{StatusCode: 400, Body: []byte(badRequestBody)}, want: custerror.ErrorInvalidArgument},
		{name: "bad request without body", resp: &Response{StatusCode: 400}, want: custerror.ErrorInvalidArgument},
		{name: "unauthorized", resp: &Response{StatusCode: 401}, want: custerror.ErrorPermissionDenied},
		{name: "forbidden", resp: &Response{StatusCode: 403}, want: custerror.ErrorPermissionDenied},
		{name: "not found", resp: &Response{StatusCode: 404}, want: custerror.ErrorNotFound},
		{name: "conflict", resp: &Response{StatusCode: 409}, want: custerror.ErrorAlreadyExists},
		{name: "internal", resp: &Response{StatusCode: 500}, want: custerror.ErrorInternal},
		{name: "unexpected", resp: &Response{StatusCode: 503}, want: custerror.ErrorInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckResponse(tt.resp)
			if tt.want == nil {
				if err != nil {
					t.Fatalf("unexpected error %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestResponse_ResponseStatus(t *testing.T) {
	resp := &Response{StatusCode: 400, Body: []byte(badRequestBody)}
	status, err := resp.ResponseStatus()
	if err != nil {
		t.Fatal(err)
	}
	if status.StatusString != "Invalid Operation" || status.SubStatusCode != "invalidOperation" {
		t.Errorf("unexpected status %+v", status)
	}

	err = CheckResponse(resp)
	if err.Error() != "Invalid Operation: invalidOperation" {
		t.Errorf("message = %q", err.Error())
	}
}
