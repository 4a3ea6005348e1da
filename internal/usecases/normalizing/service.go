package normalizing

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/marketing-metrics-api/internal/domain"
	"github.com/vfg2006/marketing-metrics-api/pkg/utils"
)

// Normalize unifica os registros do Facebook e do Google no formato de quatro colunas.
// As linhas do Facebook vêm primeiro, seguidas das do Google, preservando a ordem de cada origem.
// Qualquer registro inválido faz a operação inteira falhar sem saída parcial.
func Normalize(facebook []domain.RawFacebookRecord, google []domain.RawGoogleRecord) ([]domain.UnifiedMetricRecord, error) {
	records := make([]domain.UnifiedMetricRecord, 0, len(facebook)+len(google))

	for i, raw := range facebook {
		record, err := normalizeFacebook(i, raw)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	for i, raw := range google {
		record, err := normalizeGoogle(i, raw)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// normalizeFacebook apenas projeta as colunas: o feed já vem em dólares e YYYY-MM-DD
func normalizeFacebook(index int, raw domain.RawFacebookRecord) (domain.UnifiedMetricRecord, error) {
	if raw.Date == "" {
		return domain.UnifiedMetricRecord{}, domain.NewValidationError(domain.SourceFacebook, index, "date", "valor ausente")
	}
	if _, err := utils.ParseDate(raw.Date); err != nil {
		return domain.UnifiedMetricRecord{}, &domain.ValidationError{
			Source: domain.SourceFacebook,
			Index:  index,
			Field:  "date",
			Reason: "data fora do formato YYYY-MM-DD",
			Err:    err,
		}
	}
	if raw.Platform == "" {
		return domain.UnifiedMetricRecord{}, domain.NewValidationError(domain.SourceFacebook, index, "platform", "valor ausente")
	}

	clicks, err := requireNonNegative(domain.SourceFacebook, index, "clicks", raw.Clicks)
	if err != nil {
		return domain.UnifiedMetricRecord{}, err
	}

	if raw.SpendUSD == nil {
		return domain.UnifiedMetricRecord{}, domain.NewValidationError(domain.SourceFacebook, index, "spend_usd", "valor ausente")
	}
	if raw.SpendUSD.IsNegative() {
		return domain.UnifiedMetricRecord{}, domain.NewValidationError(domain.SourceFacebook, index, "spend_usd", "valor negativo")
	}

	return domain.UnifiedMetricRecord{
		Date:     raw.Date,
		Platform: raw.Platform,
		Clicks:   clicks,
		SpendUSD: *raw.SpendUSD,
	}, nil
}

// normalizeGoogle trunca o timestamp para o dia, converte centavos em dólares e renomeia os campos
func normalizeGoogle(index int, raw domain.RawGoogleRecord) (domain.UnifiedMetricRecord, error) {
	if raw.Timestamp == "" {
		return domain.UnifiedMetricRecord{}, domain.NewValidationError(domain.SourceGoogle, index, "timestamp", "valor ausente")
	}
	date, err := utils.CalendarDay(raw.Timestamp)
	if err != nil {
		return domain.UnifiedMetricRecord{}, &domain.ValidationError{
			Source: domain.SourceGoogle,
			Index:  index,
			Field:  "timestamp",
			Reason: "timestamp ISO-8601 inválido",
			Err:    err,
		}
	}
	if raw.SourcePlatform == "" {
		return domain.UnifiedMetricRecord{}, domain.NewValidationError(domain.SourceGoogle, index, "source_platform", "valor ausente")
	}

	clicks, err := requireNonNegative(domain.SourceGoogle, index, "clickCount", raw.ClickCount)
	if err != nil {
		return domain.UnifiedMetricRecord{}, err
	}
	cents, err := requireNonNegative(domain.SourceGoogle, index, "costInCents", raw.CostInCents)
	if err != nil {
		return domain.UnifiedMetricRecord{}, err
	}

	return domain.UnifiedMetricRecord{
		Date:     date,
		Platform: raw.SourcePlatform,
		Clicks:   clicks,
		SpendUSD: CentsToDollars(cents),
	}, nil
}

// CentsToDollars converte centavos em dólares sem perda de precisão
func CentsToDollars(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

func requireNonNegative(source string, index int, field string, value *int64) (int64, error) {
	if value == nil {
		return 0, domain.NewValidationError(source, index, field, "valor ausente")
	}
	if *value < 0 {
		return 0, domain.NewValidationError(source, index, field, "valor negativo")
	}
	return *value, nil
}
