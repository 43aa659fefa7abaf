package account

import (
	"github.com/danielgtaylor/huma/v2"
)

const tag = "Accounts"

// IDPath addresses a single account.
type IDPath struct {
	ID int64 `path:"id" minimum:"1" doc:"Account id"`
}

type accountService interface {
	accountCreator
	accountGetter
	accountLister
	accountUpdater
	accountDeleter
}

// Register registers every account operation with the Huma API.
func Register(api huma.API, svc accountService) {
	NewCreateAccountHandler(svc).Register(api)
	NewGetAccountHandler(svc).Register(api)
	NewListAccountsHandler(svc).Register(api)
	NewUpdateAccountHandler(svc).Register(api)
	NewDeleteAccountHandler(svc).Register(api)
}
