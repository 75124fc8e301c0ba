package order

import (
	"github.com/Zhima-Mochi/minishop-checkout/internal/domain/catalog"
	domainPayment "github.com/Zhima-Mochi/minishop-checkout/internal/domain/payment"
)

type IDGenerator interface {
	NewID() string
}

type PaymentPort interface {
	domainPayment.Linker
}

type CatalogPort interface {
	catalog.Repository
}
