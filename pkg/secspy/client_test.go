package secspy

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
)

const systemInfoFixture = `<?xml version="1.0" encoding="UTF-8"?>
<system>
  <server>
    <server-name>Garage NVR</server-name>
    <uuid>F34C8A12-9D41-4E6B-8F11-0D2A6C1B7E90</uuid>
    <version>5.5.2</version>
    <ip1>192.168.1.67</ip1>
  </server>
  <cameralist>
    <camera>
      <number>0</number>
      <name>Driveway</name>
      <connected>yes</connected>
      <devicename>DCS-8302LH</devicename>
      <ptzcapabilities>15</ptzcapabilities>
      <ptzpresetlist>
        <ptzpreset index="1">Gate</ptzpreset>
      </ptzpresetlist>
    </camera>
    <camera>
      <number>1</number>
      <name>Porch</name>
      <connected>no</connected>
      <devicename>Generic RTSP</devicename>
      <ptzcapabilities>0</ptzcapabilities>
    </camera>
  </cameralist>
  <schedulepresetlist>
    <schedulepreset><id>1730485600</id><name>Away</name></schedulepreset>
  </schedulepresetlist>
</system>`

// newTestClient points a client at the given httptest server.
func newTestClient(t *testing.T, ts *httptest.Server) *Client {
	t.Helper()

	u, err := url.Parse(ts.URL)
	if err != nil {
		t.Fatalf("parse test server URL: %v", err)
	}
	port, err := strconv.Atoi(u.Port())
	if err != nil {
		t.Fatalf("parse test server port: %v", err)
	}

	return New(Config{
		Host:     u.Hostname(),
		Port:     port,
		Username: "admin",
		Password: "secret",
	})
}

func TestGetRejectsBadCredentials(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "denied", status)
		}))

		c := newTestClient(t, ts)
		_, err := c.GetCameras(context.Background())

		var credErr *CredentialsError
		if !errors.As(err, &credErr) {
			t.Fatalf("status %d: got %v, want *CredentialsError", status, err)
		}
		if credErr.StatusCode != status {
			t.Fatalf("StatusCode = %d, want %d", credErr.StatusCode, status)
		}
		ts.Close()
	}
}

func TestGetReportsServerErrors(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()

	c := newTestClient(t, ts)
	_, err := c.GetServerInfo(context.Background())

	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("got %v, want *RequestError", err)
	}
	if reqErr.StatusCode != http.StatusInternalServerError {
		t.Fatalf("StatusCode = %d, want 500", reqErr.StatusCode)
	}
}

func TestGetReportsConnectionFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	c := newTestClient(t, ts)
	ts.Close() // nothing is listening anymore

	_, err := c.GetCameras(context.Background())

	var connErr *ConnectionError
	if !errors.As(err, &connErr) {
		t.Fatalf("got %v, want *ConnectionError", err)
	}
	if connErr.Unwrap() == nil {
		t.Fatal("ConnectionError should wrap the transport error")
	}
}

func TestGetReportsUnparseablePayload(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("this is not xml at all"))
	}))
	defer ts.Close()

	c := newTestClient(t, ts)
	_, err := c.GetCameras(context.Background())

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("got %v, want *ParseError", err)
	}
	if parseErr.Endpoint != "/systemInfo" {
		t.Fatalf("Endpoint = %q, want /systemInfo", parseErr.Endpoint)
	}
}

func TestGetSendsAuthToken(t *testing.T) {
	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.URL.Query().Get("auth")
		w.Write([]byte(systemInfoFixture))
	}))
	defer ts.Close()

	c := newTestClient(t, ts)
	if _, err := c.GetCameras(context.Background()); err != nil {
		t.Fatalf("GetCameras: %v", err)
	}

	// base64("admin:secret")
	if gotAuth != "YWRtaW46c2VjcmV0" {
		t.Fatalf("auth token = %q, want %q", gotAuth, "YWRtaW46c2VjcmV0")
	}
}
