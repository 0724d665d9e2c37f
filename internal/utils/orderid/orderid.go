// Package orderid генерирует короткие идентификаторы заказов и кодов
// розыгрыша: 6 символов, заглавные латинские буквы и цифры.
package orderid

import "github.com/jaevor/go-nanoid"

const (
	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	length   = 6
)

// Generator возвращает новый идентификатор при каждом вызове
type Generator func() string

// NewGenerator создает генератор идентификаторов
func NewGenerator() (Generator, error) {
	gen, err := nanoid.CustomASCII(alphabet, length)
	if err != nil {
		return nil, err
	}
	return Generator(gen), nil
}
