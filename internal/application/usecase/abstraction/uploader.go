package abstraction

import (
	"context"

	"inkwell/internal/application/usecase"
	"inkwell/internal/domain/model"
)

type Uploader interface {
	Upload(ctx context.Context, file usecase.UploadFile) (*model.Media, error)
}
