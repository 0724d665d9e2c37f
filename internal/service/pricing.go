package service

import "github.com/avc/starstore/internal/domain"

// PriceTable задает фиксированные цены пакетов в USDT.
// Сумма заказа всегда берется отсюда и никогда от пользователя.
type PriceTable struct {
	Regular map[int]float64 // звезды -> цена
	Premium map[int]float64 // месяцы премиума -> цена
}

// DefaultPriceTable возвращает прайс магазина
func DefaultPriceTable() PriceTable {
	return PriceTable{
		Regular: map[int]float64{
			1000: 20,
			500:  10,
			100:  2,
			50:   1,
			25:   0.6,
			15:   0.35,
		},
		Premium: map[int]float64{
			3:  19.31,
			6:  26.25,
			12: 44.79,
		},
	}
}

// StarsAmount возвращает цену пакета звезд
func (t PriceTable) StarsAmount(stars int) (float64, error) {
	amount, ok := t.Regular[stars]
	if !ok {
		return 0, domain.ErrInvalidSelection
	}
	return amount, nil
}

// PremiumAmount возвращает цену премиум-подписки
func (t PriceTable) PremiumAmount(months int) (float64, error) {
	amount, ok := t.Premium[months]
	if !ok {
		return 0, domain.ErrInvalidSelection
	}
	return amount, nil
}
