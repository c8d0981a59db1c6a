package feed

import (
	"archive/zip"
	"bytes"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildZip(t *testing.T, members map[string][]byte, order []string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range order {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write(members[name])
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestDecodePicksFirstXMLMember(t *testing.T) {
	xmlBody := []byte("<catalog/>")
	payload := buildZip(t, map[string][]byte{
		"readme.txt":  []byte("ignore me"),
		"catalog.xml": xmlBody,
	}, []string{"readme.txt", "catalog.xml"})

	data, name, err := Decode(payload, http.StatusOK)
	require.NoError(t, err)
	assert.Equal(t, "catalog.xml", name)
	assert.Equal(t, xmlBody, data)
}

func TestDecodeListingOrderWins(t *testing.T) {
	payload := buildZip(t, map[string][]byte{
		"b.xml": []byte("<b/>"),
		"a.xml": []byte("<a/>"),
	}, []string{"b.xml", "a.xml"})

	data, name, err := Decode(payload, http.StatusOK)
	require.NoError(t, err)
	assert.Equal(t, "b.xml", name)
	assert.Equal(t, []byte("<b/>"), data)
}

func TestDecodeRawPayloadFallsThrough(t *testing.T) {
	payload := []byte("<shop><offers/></shop>")

	data, name, err := Decode(payload, http.StatusOK)
	require.NoError(t, err)
	assert.Equal(t, FallbackName, name)
	assert.Equal(t, payload, data)
}

func TestDecodeArchiveWithoutXML(t *testing.T) {
	payload := buildZip(t, map[string][]byte{
		"readme.txt": []byte("nothing here"),
	}, []string{"readme.txt"})

	_, _, err := Decode(payload, http.StatusOK)
	assert.ErrorIs(t, err, ErrNoXMLInArchive)
}

func TestDecodeUpstreamStatus(t *testing.T) {
	_, _, err := Decode([]byte("gone"), http.StatusBadGateway)

	var upstreamErr *UpstreamHTTPError
	require.True(t, errors.As(err, &upstreamErr))
	assert.Equal(t, http.StatusBadGateway, upstreamErr.Status)
}
