package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRenderer_ParsesAllPages(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	for _, page := range pages {
		assert.Contains(t, r.templates, page)
	}
}

func TestRenderError(t *testing.T) {
	rec := httptest.NewRecorder()
	MustNewRenderer().RenderError(rec, http.StatusBadRequest, "Invalid <date>")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "Invalid &lt;date&gt;")
}

func TestRender_UnknownPage(t *testing.T) {
	rec := httptest.NewRecorder()
	MustNewRenderer().Render(rec, http.StatusOK, "nope", Page{})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRedirect(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/appointments", nil)
	rec := httptest.NewRecorder()

	Redirect(rec, req, "/appointments", DateParams("2024-01-01"), "Appointment created")

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	location, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "/appointments", location.Path)
	assert.Equal(t, "2024-01-01", location.Query().Get("date"))
	assert.Equal(t, "Appointment created", location.Query().Get(AlertParam))
}

func TestDateParams_DropsInvalidDate(t *testing.T) {
	assert.Empty(t, DateParams("").Encode())
	assert.Empty(t, DateParams("01/01/2024").Encode())
	assert.Equal(t, "date=2024-01-01", DateParams("2024-01-01").Encode())
}

func TestParseDateParam(t *testing.T) {
	date, err := ParseDateParam(httptest.NewRequest(http.MethodGet, "/?date=2024-02-29", nil), "date")
	require.NoError(t, err)
	require.NotNil(t, date)
	assert.Equal(t, 29, date.Day())

	date, err = ParseDateParam(httptest.NewRequest(http.MethodGet, "/", nil), "date")
	require.NoError(t, err)
	assert.Nil(t, date)

	_, err = ParseDateParam(httptest.NewRequest(http.MethodGet, "/?date=2024-02-30", nil), "date")
	assert.Error(t, err)
}

func TestDecodeForm(t *testing.T) {
	var form struct {
		Name   string `schema:"name"`
		Doctor *int   `schema:"doctor"`
		Room   *int   `schema:"room_nr"`
	}

	body := url.Values{"name": {"John"}, "doctor": {"2"}, "room_nr": {""}, "extra": {"x"}}.Encode()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	require.NoError(t, DecodeForm(req, &form))
	assert.Equal(t, "John", form.Name)
	require.NotNil(t, form.Doctor)
	assert.Equal(t, 2, *form.Doctor)
	assert.Nil(t, form.Room)
}

func TestDecodeForm_BlankValuesStayUnset(t *testing.T) {
	var form struct {
		Date   string `schema:"date"`
		Doctor *int   `schema:"doctor"`
	}

	body := url.Values{"date": {"2024-01-01"}, "doctor": {"  "}}.Encode()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	require.NoError(t, DecodeForm(req, &form))
	assert.Equal(t, "2024-01-01", form.Date)
	assert.Nil(t, form.Doctor)
}
