package feed

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// FallbackName используется, когда ответ поставщика — голый XML без архива.
const FallbackName = "feed.xml"

// Decode принимает сырое тело ответа и HTTP-статус и возвращает байты
// XML-документа вместе с именем файла.
//
// Если тело — zip-архив, берётся первый элемент с расширением .xml в порядке
// листинга архива (порядок сортировки не навязываем, это контракт
// поставщика). Архив без единого .xml — ошибка. Тело, не являющееся архивом,
// возвращается как есть: многие поставщики отдают XML без упаковки, валидность
// проверит уже парсер.
func Decode(payload []byte, status int) ([]byte, string, error) {
	if status != http.StatusOK {
		return nil, "", &UpstreamHTTPError{Status: status}
	}

	zr, err := zip.NewReader(bytes.NewReader(payload), int64(len(payload)))
	if err != nil {
		return payload, FallbackName, nil
	}

	for _, f := range zr.File {
		if !strings.HasSuffix(strings.ToLower(f.Name), ".xml") {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, "", fmt.Errorf("open archive member %q: %w", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, "", fmt.Errorf("read archive member %q: %w", f.Name, err)
		}
		return data, f.Name, nil
	}

	return nil, "", ErrNoXMLInArchive
}
