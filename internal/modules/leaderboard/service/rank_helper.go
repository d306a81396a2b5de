package service

import (
	"math"

	"anoa.com/askify/internal/modules/leaderboard/dto"
)

// Tier thresholds, highest first.
const (
	PointsHuyenThoai = 5000
	PointsChuyenGia  = 1000
	PointsTichCuc    = 500
	PointsThanhVien  = 100
	PointsNguoiMoi   = 0
)

var tiers = []struct {
	name   string
	points int
}{
	{"Huyền thoại", PointsHuyenThoai},
	{"Chuyên gia", PointsChuyenGia},
	{"Tích cực", PointsTichCuc},
	{"Thành viên", PointsThanhVien},
	{"Người mới", PointsNguoiMoi},
}

const maxTier = "Cấp tối đa"

func GetTierStatus(points int) dto.TierStatus {
	status := dto.TierStatus{CurrentPoints: points}

	for i, tier := range tiers {
		if points < tier.points && i < len(tiers)-1 {
			continue
		}

		status.TierName = tier.name
		if i == 0 {
			status.NextTier = maxTier
			status.TargetPoints = tier.points
			status.Progress = 100
			return status
		}

		next := tiers[i-1]
		status.NextTier = next.name
		status.TargetPoints = next.points
		if points > 0 {
			status.Progress = math.Round(float64(points)/float64(next.points)*100*100) / 100
		}
		return status
	}

	return status
}

var trophies = []string{"🥇", "🥈", "🥉"}

// Trophy returns the medal for the 1-based positions 1 to 3, "" otherwise.
func Trophy(position int) string {
	if position < 1 || position > len(trophies) {
		return ""
	}
	return trophies[position-1]
}
