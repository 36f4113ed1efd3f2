package cli

import (
	"context"

	"github.com/goliatone/go-userform"
	"github.com/goliatone/go-userform/internal/config"
	"github.com/goliatone/go-userform/pkg/model"
)

func loadForm(ctx context.Context, cfg config.Config) (model.FormModel, error) {
	return userform.LoadForm(ctx,
		userform.WithDocumentFile(cfg.FormDocument),
		userform.WithOperationID(cfg.OperationID),
		userform.WithUISchemaDir(cfg.UISchemaDir),
	)
}
