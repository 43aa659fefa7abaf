package user

import (
	"context"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/service"
)

const tag = "Users"

// IDPath addresses a single user.
type IDPath struct {
	ID int64 `path:"id" minimum:"1" doc:"User id"`
}

type userService interface {
	userCreator
	userGetter
	userLister
	userUpdater
	userDeleter
}

type summaryGetter interface {
	GetSummary(ctx context.Context, userID int64) (*service.Summary, error)
}

// Register registers every user operation with the Huma API.
func Register(api huma.API, users userService, summaries summaryGetter) {
	NewCreateUserHandler(users).Register(api)
	NewGetUserHandler(users).Register(api)
	NewListUsersHandler(users).Register(api)
	NewUpdateUserHandler(users).Register(api)
	NewDeleteUserHandler(users).Register(api)
	NewGetSummaryHandler(summaries).Register(api)
}
