package models

type LoginRequest struct {
	Usuario  string `json:"usuario" form:"usuario" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

type ProductRequest struct {
	Name     string  `json:"nombre" form:"nombre" binding:"required"`
	Price    int     `json:"precio" form:"precio" binding:"min=0"`
	Stock    int     `json:"stock" form:"stock" binding:"min=0"`
	Code     string  `json:"codigo" form:"codigo"`
	Category string  `json:"categoria" form:"categoria" binding:"required"`
	Weight   float64 `json:"peso" form:"peso" binding:"min=0"`
}

type ShippingRequest struct {
	PostalCode string `json:"cp" form:"cp" binding:"required"`
}
