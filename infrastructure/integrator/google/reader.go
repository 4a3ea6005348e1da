package google

import (
	"bytes"
	"context"
	"io"
	"math"
	"os"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-metrics-api/internal/domain"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// adRecord espelha um objeto do export do Google Ads.
// Os campos numéricos ficam crus para que strings numéricas ("50000") sejam rejeitadas.
type adRecord struct {
	CampaignID     string              `json:"campaignId"`
	Timestamp      string              `json:"timestamp"`
	SourcePlatform string              `json:"source_platform"`
	ClickCount     jsoniter.RawMessage `json:"clickCount"`
	CostInCents    jsoniter.RawMessage `json:"costInCents"`
}

// Reader lê o array JSON exportado pelo Google Ads
type Reader struct {
	path string
}

func NewReader(path string) *Reader {
	return &Reader{path: path}
}

func (r *Reader) Read(ctx context.Context) ([]domain.RawGoogleRecord, error) {
	file, err := os.Open(r.path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir feed do Google %s", r.path)
	}
	defer file.Close()

	records, err := Parse(ctx, file)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"file":    r.path,
		"records": len(records),
	}).Debug("Feed do Google lido")

	return records, nil
}

// Parse decodifica cada elemento do array separadamente para apontar qual registro está malformado
func Parse(ctx context.Context, in io.Reader) ([]domain.RawGoogleRecord, error) {
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler feed do Google")
	}

	var elements []jsoniter.RawMessage
	if err := jsonAPI.Unmarshal(data, &elements); err != nil {
		return nil, &domain.ValidationError{
			Source: domain.SourceGoogle,
			Reason: "o feed deve ser um array JSON",
			Err:    err,
		}
	}
	// null decodifica sem erro e deixa o slice nil
	if elements == nil {
		return nil, &domain.ValidationError{
			Source: domain.SourceGoogle,
			Reason: "o feed deve ser um array JSON",
		}
	}

	records := make([]domain.RawGoogleRecord, 0, len(elements))
	for index, element := range elements {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var raw adRecord
		if err := jsonAPI.Unmarshal(element, &raw); err != nil {
			return nil, &domain.ValidationError{
				Source: domain.SourceGoogle,
				Index:  index,
				Reason: "objeto JSON malformado",
				Err:    err,
			}
		}

		clicks, err := parseInteger(index, "clickCount", raw.ClickCount)
		if err != nil {
			return nil, err
		}
		cents, err := parseInteger(index, "costInCents", raw.CostInCents)
		if err != nil {
			return nil, err
		}

		records = append(records, domain.RawGoogleRecord{
			CampaignID:     raw.CampaignID,
			Timestamp:      raw.Timestamp,
			SourcePlatform: raw.SourcePlatform,
			ClickCount:     clicks,
			CostInCents:    cents,
		})
	}

	return records, nil
}

// parseInteger aceita apenas números JSON inteiros ou com parte fracionária zero (ex.: 500.0).
// Campo ausente ou null vira nil.
func parseInteger(index int, field string, raw jsoniter.RawMessage) (*int64, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	invalid := func(reason string, err error) error {
		return &domain.ValidationError{
			Source: domain.SourceGoogle,
			Index:  index,
			Field:  field,
			Reason: reason,
			Err:    err,
		}
	}

	if raw[0] == '"' {
		return nil, invalid("tipo inválido, esperado número: "+string(raw), nil)
	}

	text := string(raw)
	if value, err := strconv.ParseInt(text, 10, 64); err == nil {
		return &value, nil
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil || f != math.Trunc(f) || f >= math.MaxInt64 || f < math.MinInt64 {
		return nil, invalid("valor inteiro inválido: "+text, err)
	}

	value := int64(f)
	return &value, nil
}
