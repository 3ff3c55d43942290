package server_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendLead_Success(t *testing.T) {
	f := newFixture()
	r := f.router()

	w := postJSON(r, "/api/send_lead",
		`{"name":"Ana","phone":"+1 555 0100","landing":"lp-003sl"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["ok"])
	assert.Equal(t, "../lp-003sl/thankyou.html", resp["redirect_url"])

	require.Len(t, f.notifier.messages, 1)
	assert.Contains(t, f.notifier.messages[0], "New contact request")
	// The lead flow never touches the payment gateway.
	assert.Zero(t, f.gw.calls)
}

func TestSendLead_LandingFromPageURL(t *testing.T) {
	f := newFixture()
	r := f.router()

	w := postJSON(r, "/api/send_lead",
		`{"name":"Ana","phone":"+1 555 0100","page_url":"https://site.example/landings/lp-003sl/"}`)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestSendLead_WrongLanding(t *testing.T) {
	f := newFixture()
	r := f.router()

	w := postJSON(r, "/api/send_lead",
		`{"name":"Ana","phone":"+1 555 0100","landing":"lp-01"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation_error")
	assert.Empty(t, f.notifier.messages)
}

func TestSendLead_ShortPhone(t *testing.T) {
	f := newFixture()
	r := f.router()

	w := postJSON(r, "/api/send_lead",
		`{"name":"Ana","phone":"12345","landing":"lp-003sl"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation_error")
}

func TestSendLead_InvalidJSON(t *testing.T) {
	f := newFixture()
	r := f.router()

	w := postJSON(r, "/api/send_lead", `nope`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_json")
}
