package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/paintmart/storefront/internal/core/domain"
	"github.com/paintmart/storefront/internal/core/port"
)

var _ port.BannersRepository = (*BannersRepository)(nil)

type BannersRepository struct {
	sqldb sqldb
}

func NewBannersRepository(sqldb sqldb) BannersRepository {
	return BannersRepository{sqldb}
}

const bannerColumns = `
	id, title, subtitle, image, video_url, media_type,
	cta_text, cta_link, position, height, text_color `

func (r BannersRepository) List(
	ctx context.Context,
) ([]domain.Banner, error) {
	const op = "BannersRepository.List"
	query := `SELECT` + bannerColumns + `FROM banners ORDER BY position;`
	return r.list(ctx, op, query)
}

func (r BannersRepository) ListBypass(
	ctx context.Context,
) ([]domain.Banner, error) {
	const op = "BannersRepository.ListBypass"
	query := `SELECT` + bannerColumns + `FROM catalog_banners();`
	return r.list(ctx, op, query)
}

func (r BannersRepository) list(
	ctx context.Context, op, query string,
) ([]domain.Banner, error) {
	if err := ctx.Err(); err != nil {
		return nil, classify("read", fmt.Errorf("%s: %w", op, err))
	}

	rows, err := r.sqldb.QueryContext(ctx, query)
	if err != nil {
		return nil, classify("read", fmt.Errorf("%s: %w", op, err))
	}
	defer rows.Close()

	var bs []domain.Banner
	for rows.Next() {
		b, err := scanBanner(rows)
		if err != nil {
			return nil, classify("read", fmt.Errorf("%s: %w", op, err))
		}
		bs = append(bs, b)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("read", fmt.Errorf("%s: %w", op, err))
	}
	return bs, nil
}

func (r BannersRepository) Get(
	ctx context.Context, id int64,
) (domain.Banner, error) {
	const op = "BannersRepository.Get"

	if err := ctx.Err(); err != nil {
		return domain.Banner{}, classify("read", fmt.Errorf("%s: %w", op, err))
	}

	query := `SELECT` + bannerColumns + `FROM banners WHERE id = $1;`
	b, err := scanBanner(r.sqldb.QueryRowContext(ctx, query, id))
	if err != nil {
		return domain.Banner{}, classify("read", fmt.Errorf("%s: %w", op, err))
	}
	return b, nil
}

func (r BannersRepository) GetBypass(
	ctx context.Context, id int64,
) (domain.Banner, error) {
	const op = "BannersRepository.GetBypass"

	if err := ctx.Err(); err != nil {
		return domain.Banner{}, classify("read", fmt.Errorf("%s: %w", op, err))
	}

	query := `SELECT` + bannerColumns + `FROM catalog_banner($1);`
	b, err := scanBanner(r.sqldb.QueryRowContext(ctx, query, id))
	if err != nil {
		return domain.Banner{}, classify("read", fmt.Errorf("%s: %w", op, err))
	}
	return b, nil
}

func (r BannersRepository) Create(
	ctx context.Context, b domain.Banner,
) (domain.Banner, error) {
	const op = "BannersRepository.Create"

	if err := ctx.Err(); err != nil {
		return domain.Banner{}, classify("create", fmt.Errorf("%s: %w", op, err))
	}

	query := `
		INSERT INTO banners (
			title, subtitle, image, video_url, media_type,
			cta_text, cta_link, position, height, text_color
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING` + bannerColumns + `;`

	row := r.sqldb.QueryRowContext(ctx, query,
		b.Title, b.Subtitle, b.Image, b.VideoURL, string(b.MediaType),
		b.CTAText, b.CTALink, b.Position, b.Height, b.TextColor,
	)
	created, err := scanBanner(row)
	if err != nil {
		return domain.Banner{}, classify("create", fmt.Errorf("%s: %w", op, err))
	}
	return created, nil
}

func (r BannersRepository) Update(
	ctx context.Context, b domain.Banner,
) (domain.Banner, error) {
	const op = "BannersRepository.Update"

	if err := ctx.Err(); err != nil {
		return domain.Banner{}, classify("update", fmt.Errorf("%s: %w", op, err))
	}

	query := `
		UPDATE banners SET
			title = $2, subtitle = $3, image = $4, video_url = $5,
			media_type = $6, cta_text = $7, cta_link = $8,
			position = $9, height = $10, text_color = $11
		WHERE id = $1
		RETURNING` + bannerColumns + `;`

	row := r.sqldb.QueryRowContext(ctx, query,
		b.ID, b.Title, b.Subtitle, b.Image, b.VideoURL,
		string(b.MediaType), b.CTAText, b.CTALink,
		b.Position, b.Height, b.TextColor,
	)
	updated, err := scanBanner(row)
	if err != nil {
		return domain.Banner{}, classify("update", fmt.Errorf("%s: %w", op, err))
	}
	return updated, nil
}

func (r BannersRepository) Delete(ctx context.Context, id int64) error {
	const op = "BannersRepository.Delete"

	if err := ctx.Err(); err != nil {
		return classify("delete", fmt.Errorf("%s: %w", op, err))
	}

	res, err := r.sqldb.ExecContext(
		ctx, `DELETE FROM banners WHERE id = $1;`, id,
	)
	if err != nil {
		return classify("delete", fmt.Errorf("%s: %w", op, err))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NewNotFound("delete")
	}
	return nil
}

func scanBanner(s scanner) (domain.Banner, error) {
	var (
		b         domain.Banner
		subtitle  sql.NullString
		image     sql.NullString
		videoURL  sql.NullString
		mediaType string
		height    sql.NullString
		textColor sql.NullString
	)
	err := s.Scan(
		&b.ID, &b.Title, &subtitle, &image, &videoURL, &mediaType,
		&b.CTAText, &b.CTALink, &b.Position, &height, &textColor,
	)
	if err != nil {
		return domain.Banner{}, err
	}
	b.Subtitle = subtitle.String
	b.Image = image.String
	b.VideoURL = videoURL.String
	b.MediaType = domain.MediaType(mediaType)
	b.Height = height.String
	b.TextColor = textColor.String
	return b, nil
}
