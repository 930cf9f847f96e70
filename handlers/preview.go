package handlers

import (
	"database/sql"

	"github.com/ZachMcM/purdue-hoops/models"
	"github.com/huandu/go-sqlbuilder"
)

// previewSelectBuilder starts a query over users with the columns every
// roster-style endpoint (search, leaderboard, gyms, search history) returns.
func previewSelectBuilder() *sqlbuilder.SelectBuilder {
	sb := sqlbuilder.NewSelectBuilder()
	sb.Select(
		"u.id", "u.name", "u.image", "u.position", "u.primary_skill",
		"u.secondary_skill", "u.overall_rating", "u.hooping_status",
		"(SELECT COUNT(*) FROM ratings r WHERE r.incoming_id = u.id) AS rating_count",
	)
	sb.From("users u")
	return sb
}

func scanPreviews(rows *sql.Rows) ([]models.UserPreview, error) {
	users := []models.UserPreview{}
	for rows.Next() {
		var p models.UserPreview
		var overall sql.NullFloat64
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Image, &p.Position, &p.PrimarySkill,
			&p.SecondarySkill, &overall, &p.HoopingStatus, &p.RatingCount,
		); err != nil {
			return nil, err
		}
		if overall.Valid {
			p.OverallRating = &overall.Float64
		}
		users = append(users, p)
	}
	return users, rows.Err()
}
