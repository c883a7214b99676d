package entities

import (
	"time"

	"github.com/google/uuid"
)

// Metric names used by the dashboard aggregations. The table accepts any
// name; only these two participate in trend computation.
const (
	MetricRevenue     = "revenue"
	MetricConversions = "conversions"
)

// GrowthMetric is a single dated numeric fact (e.g. one day of revenue).
// Rows are read-only from the request path; only the seeder writes them.
type GrowthMetric struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID      uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	MetricName  string    `json:"metric_name" gorm:"type:varchar(50);not null;index"`
	MetricValue float64   `json:"metric_value" gorm:"type:numeric(14,2);not null;default:0"`
	MetricDate  time.Time `json:"metric_date" gorm:"type:date;not null;index"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GrowthMetric
func (GrowthMetric) TableName() string {
	return "growth_metrics"
}
