package pexels

import "stockpick/internal/domain"

// mapPage converts wire data to a domain asset page
func mapPage(data *listData) *domain.AssetPage {
	kind := domain.AssetKind(data.Kind)
	assets := make([]domain.LibraryAsset, 0, len(data.Assets))
	for _, dto := range data.Assets {
		if dto.ID == "" {
			continue
		}
		assets = append(assets, mapAsset(dto, kind))
	}
	return &domain.AssetPage{
		Provider: data.Provider,
		Kind:     kind,
		Page:     data.Page,
		PerPage:  data.PerPage,
		Total:    data.Total,
		Assets:   assets,
	}
}

// mapAsset converts a single wire asset to the domain type
func mapAsset(dto assetDTO, kind domain.AssetKind) domain.LibraryAsset {
	return domain.LibraryAsset{
		ID:         dto.ID,
		Kind:       kind,
		SrcURL:     dto.SrcURL,
		PreviewURL: dto.PreviewURL,
		Width:      dto.Width,
		Height:     dto.Height,
		DurationMs: dto.DurationMs,
		Name:       dto.Name,
		Author:     dto.Author,
	}
}
