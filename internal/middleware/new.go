package middleware

import (
	"tubeline-api/internal/subscription"
	pkgLog "tubeline-api/pkg/log"
	"tubeline-api/pkg/scope"
	"tubeline-api/pkg/whatsapp"
)

type Middleware struct {
	l     pkgLog.Logger
	scope scope.Manager
	subUC subscription.UseCase
	wa    whatsapp.IWhatsApp
}

func New(l pkgLog.Logger, scopeManager scope.Manager, subUC subscription.UseCase, wa whatsapp.IWhatsApp) Middleware {
	return Middleware{
		l:     l,
		scope: scopeManager,
		subUC: subUC,
		wa:    wa,
	}
}
