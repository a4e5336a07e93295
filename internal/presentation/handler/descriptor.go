package handler

import (
	"inkwell/internal/domain/dto"
	"inkwell/internal/domain/model"
)

func mediaToDescriptor(m *model.Media) dto.MediaDescriptor {
	d := dto.MediaDescriptor{
		Key:         m.Key,
		URL:         m.URL,
		FileName:    m.FileName,
		MimeType:    m.MimeType,
		SizeInBytes: m.Size,
		Uploaded:    m.CreatedAt.Unix(),
	}
	if m.Dimensions != nil {
		d.Width = m.Dimensions.Width
		d.Height = m.Dimensions.Height
	}

	return d
}
