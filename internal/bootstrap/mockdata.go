package bootstrap

import (
	"time"

	"anoa.com/askify/internal/entity"
)

// The functions below return fresh copies on every call, so callers may
// modify what they get without touching the seed.

func MockQuestions() []entity.Question {
	return []entity.Question{
		{
			ID:      "1",
			Title:   "React Hook nào tốt nhất để quản lý state phức tạp?",
			Content: "Tôi đang xây dựng một ứng dụng React lớn và cần quản lý state phức tạp. useState có vẻ không đủ mạnh. Các bạn có thể gợi ý Hook nào phù hợp không?",
			Author: entity.Author{
				ID:         "user1",
				Name:       "Nguyễn Văn A",
				Avatar:     "https://i.pravatar.cc/40?img=1",
				Reputation: 1250,
			},
			Tags:       []string{"react", "hooks", "state-management", "frontend"},
			Subject:    "Frontend Development",
			Votes:      15,
			Answers:    8,
			Views:      234,
			CreatedAt:  time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
			IsAnswered: true,
			IsHot:      true,
		},
		{
			ID:      "2",
			Title:   "Cách tối ưu performance cho database MongoDB?",
			Content: "Database MongoDB của tôi đang chậm khi query lượng data lớn. Có cách nào để tối ưu không?",
			Author: entity.Author{
				ID:         "user2",
				Name:       "Trần Thị B",
				Avatar:     "https://i.pravatar.cc/40?img=2",
				Reputation: 890,
			},
			Tags:       []string{"mongodb", "database", "performance", "optimization"},
			Subject:    "Backend Development",
			Votes:      12,
			Answers:    5,
			Views:      167,
			CreatedAt:  time.Date(2024, 1, 14, 15, 45, 0, 0, time.UTC),
			IsAnswered: false,
			IsHot:      false,
		},
		{
			ID:      "3",
			Title:   "Machine Learning cho người mới bắt đầu nên học gì?",
			Content: "Tôi là sinh viên IT năm 2, muốn tìm hiểu về ML. Roadmap nào phù hợp cho beginner?",
			Author: entity.Author{
				ID:         "user3",
				Name:       "Phạm Văn C",
				Avatar:     "https://i.pravatar.cc/40?img=3",
				Reputation: 450,
			},
			Tags:       []string{"machine-learning", "beginner", "python", "data-science"},
			Subject:    "Data Science",
			Votes:      8,
			Answers:    12,
			Views:      89,
			CreatedAt:  time.Date(2024, 1, 13, 9, 20, 0, 0, time.UTC),
			IsAnswered: true,
			IsHot:      false,
		},
		{
			ID:      "4",
			Title:   "TypeScript có thực sự cần thiết cho dự án React không?",
			Content: "Team tôi đang tranh luận về việc có nên migrate từ JavaScript sang TypeScript. Ưu nhược điểm ra sao?",
			Author: entity.Author{
				ID:         "user4",
				Name:       "Lê Thị D",
				Avatar:     "https://i.pravatar.cc/40?img=4",
				Reputation: 2100,
			},
			Tags:       []string{"typescript", "javascript", "react", "migration"},
			Subject:    "Frontend Development",
			Votes:      23,
			Answers:    15,
			Views:      456,
			CreatedAt:  time.Date(2024, 1, 12, 14, 10, 0, 0, time.UTC),
			IsAnswered: true,
			IsHot:      true,
		},
	}
}

func MockAnswers() []entity.Answer {
	return []entity.Answer{
		{
			ID:         "1",
			QuestionID: "1",
			Content: "React Hooks là một tính năng quan trọng được giới thiệu từ React 16.8. Dưới đây là giải thích chi tiết:\n\n" +
				"**1. useState Hook:**\n```jsx\nconst [count, setCount] = useState(0);\n```\n\n" +
				"**2. useEffect Hook:**\n```jsx\nuseEffect(() => {\n  // Side effects here\n}, [dependencies]);\n```\n\n" +
				"**3. Best Practices:**\n- Luôn sử dụng hooks ở top level của component\n- Tránh gọi hooks trong loops, conditions, nested functions",
			Votes:     8,
			Author:    "Trần Thị B",
			CreatedAt: "1 giờ trước",
		},
		{
			ID:         "2",
			QuestionID: "1",
			Content: "Bổ sung thêm về useEffect:\n\nuseEffect có thể được sử dụng để:\n- Fetch data từ API\n- Subscribe/unsubscribe events\n- Cleanup resources\n- Update document title\n\n" +
				"Ví dụ fetch data:\n```jsx\nuseEffect(() => {\n  fetchData().then(setData);\n}, []);\n```",
			Votes:     5,
			Author:    "Lê Văn C",
			CreatedAt: "30 phút trước",
		},
	}
}

func MockNotifications() []entity.Notification {
	return []entity.Notification{
		{
			ID:        "1",
			Type:      entity.NotificationAnswer,
			Title:     "Câu trả lời mới cho câu hỏi của bạn",
			Message:   "Nguyễn Văn A đã trả lời câu hỏi \"Làm thế nào để học React hiệu quả?\" của bạn. Câu trả lời rất chi tiết và hữu ích.",
			Timestamp: "2 phút trước",
			Link:      "/question/1",
			Avatar:    "https://i.pravatar.cc/48?img=1",
			UserName:  "Nguyễn Văn A",
		},
		{
			ID:        "2",
			Type:      entity.NotificationLike,
			Title:     "Câu trả lời của bạn được yêu thích",
			Message:   "Trần Thị B và 4 người khác đã thích câu trả lời của bạn về \"useState trong React\".",
			Timestamp: "15 phút trước",
			Link:      "/question/2",
			Avatar:    "https://i.pravatar.cc/48?img=2",
			UserName:  "Trần Thị B",
		},
		{
			ID:            "3",
			Type:          entity.NotificationComment,
			Title:         "Bình luận mới",
			Message:       "Lê Văn C đã bình luận về câu trả lời của bạn: \"Cảm ơn bạn, giải thích rất rõ ràng!\"",
			Timestamp:     "1 giờ trước",
			ReadByDefault: true,
			Link:          "/question/3",
			Avatar:        "https://i.pravatar.cc/48?img=3",
			UserName:      "Lê Văn C",
		},
		{
			ID:            "4",
			Type:          entity.NotificationSystem,
			Title:         "Chúc mừng! Bạn đã đạt cột mốc mới",
			Message:       "Bạn đã đạt được 100 điểm danh tiếng và mở khóa huy hiệu \"Người trả lời tích cực\".",
			Timestamp:     "2 giờ trước",
			ReadByDefault: true,
			Link:          "/profile",
		},
		{
			ID:            "5",
			Type:          entity.NotificationQuestion,
			Title:         "Câu hỏi mới trong chủ đề quan tâm",
			Message:       "Phạm Thị D đã đặt câu hỏi mới về \"Next.js 13 App Router\" trong tag JavaScript.",
			Timestamp:     "3 giờ trước",
			ReadByDefault: true,
			Link:          "/question/4",
			Avatar:        "https://i.pravatar.cc/48?img=4",
			UserName:      "Phạm Thị D",
		},
		{
			ID:            "6",
			Type:          entity.NotificationFollow,
			Title:         "Người theo dõi mới",
			Message:       "Hoàng Văn E đã bắt đầu theo dõi bạn. Họ có 50+ câu hỏi và câu trả lời chất lượng.",
			Timestamp:     "1 ngày trước",
			ReadByDefault: true,
			Link:          "/profile/hoang-van-e",
			Avatar:        "https://i.pravatar.cc/48?img=5",
			UserName:      "Hoàng Văn E",
		},
	}
}

func MockLeaderboard() []entity.LeaderboardUser {
	return []entity.LeaderboardUser{
		{Name: "Nguyễn Văn A", Questions: 25, Answers: 45, Score: 1250},
		{Name: "Trần Thị B", Questions: 18, Answers: 38, Score: 980},
		{Name: "Lê Văn C", Questions: 22, Answers: 30, Score: 850},
		{Name: "Phạm Thị D", Questions: 15, Answers: 35, Score: 720},
		{Name: "Hoàng Văn E", Questions: 12, Answers: 28, Score: 650},
	}
}
