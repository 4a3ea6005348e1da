package facebook

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-metrics-api/internal/domain"
)

var requiredColumns = []string{"date", "platform", "clicks", "spend_usd"}

// Reader lê o CSV exportado pelo Facebook Ads
type Reader struct {
	path string
}

func NewReader(path string) *Reader {
	return &Reader{path: path}
}

// Read abre o arquivo configurado e devolve todos os registros brutos
func (r *Reader) Read(ctx context.Context) ([]domain.RawFacebookRecord, error) {
	file, err := os.Open(r.path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir feed do Facebook %s", r.path)
	}
	defer file.Close()

	records, err := Parse(ctx, file)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"file":    r.path,
		"records": len(records),
	}).Debug("Feed do Facebook lido")

	return records, nil
}

// Parse interpreta o CSV pelo nome das colunas, em qualquer ordem.
// ad_id e impressions são opcionais e descartados na normalização, mas validados quando presentes.
func Parse(ctx context.Context, in io.Reader) ([]domain.RawFacebookRecord, error) {
	reader := csv.NewReader(in)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return []domain.RawFacebookRecord{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler cabeçalho do CSV do Facebook")
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, domain.NewValidationError(domain.SourceFacebook, 0, name, "coluna obrigatória ausente no cabeçalho")
		}
	}

	records := make([]domain.RawFacebookRecord, 0)
	for index := 0; ; index++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &domain.ValidationError{
				Source: domain.SourceFacebook,
				Index:  index,
				Reason: "linha CSV malformada",
				Err:    err,
			}
		}

		record, err := parseRow(index, row, columns)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

func parseRow(index int, row []string, columns map[string]int) (domain.RawFacebookRecord, error) {
	cell := func(name string) string {
		i, ok := columns[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	record := domain.RawFacebookRecord{
		Date:     cell("date"),
		Platform: cell("platform"),
	}

	var err error
	if record.AdID, err = parseInt(index, "ad_id", cell("ad_id")); err != nil {
		return record, err
	}
	if record.Clicks, err = parseInt(index, "clicks", cell("clicks")); err != nil {
		return record, err
	}
	if record.Impressions, err = parseInt(index, "impressions", cell("impressions")); err != nil {
		return record, err
	}

	if raw := cell("spend_usd"); raw != "" {
		spend, err := decimal.NewFromString(raw)
		if err != nil {
			return record, &domain.ValidationError{
				Source: domain.SourceFacebook,
				Index:  index,
				Field:  "spend_usd",
				Reason: "valor não numérico",
				Err:    err,
			}
		}
		record.SpendUSD = &spend
	}

	return record, nil
}

// parseInt devolve nil para célula vazia; o normalizador decide se o campo é obrigatório
func parseInt(index int, field, raw string) (*int64, error) {
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		// pandas às vezes grava inteiros como 300.0
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil || f != float64(int64(f)) {
			return nil, &domain.ValidationError{
				Source: domain.SourceFacebook,
				Index:  index,
				Field:  field,
				Reason: "valor inteiro inválido",
				Err:    err,
			}
		}
		value = int64(f)
	}

	return &value, nil
}
