package services

import "errors"

var (
	ErrProductNotFound = errors.New("producto no encontrado")
	ErrItemNotInCart   = errors.New("el producto no está en el carrito")
	ErrOutOfStock      = errors.New("sin stock suficiente")
	ErrInvalidCategory = errors.New("categoría inválida")
)
