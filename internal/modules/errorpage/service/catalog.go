package errorpage

// Page is the content of the error page for one code.
type Page struct {
	Code         string   `json:"code"`
	Title        string   `json:"title"`
	Message      string   `json:"message"`
	Illustration string   `json:"illustration"`
	Retryable    bool     `json:"retryable"`
	Actions      []string `json:"actions"`
}

var catalog = map[string]Page{
	"404": {
		Title:        "Trang không tìm thấy",
		Message:      "Trang bạn đang tìm kiếm có thể đã được di chuyển, xóa hoặc không tồn tại.",
		Illustration: "🔍",
	},
	"500": {
		Title:        "Lỗi máy chủ nội bộ",
		Message:      "Máy chủ đã gặp phải một lỗi không mong muốn. Vui lòng thử lại sau.",
		Illustration: "⚙️",
		Retryable:    true,
	},
	"403": {
		Title:        "Truy cập bị từ chối",
		Message:      "Bạn không có quyền truy cập vào trang này.",
		Illustration: "🚫",
	},
	CodeNetwork: {
		Title:        "Lỗi kết nối mạng",
		Message:      "Không thể kết nối đến máy chủ. Vui lòng kiểm tra kết nối internet của bạn.",
		Illustration: "📡",
		Retryable:    true,
	},
	CodeTimeout: {
		Title:        "Hết thời gian chờ",
		Message:      "Yêu cầu đã hết thời gian chờ. Vui lòng thử lại.",
		Illustration: "⏰",
		Retryable:    true,
	},
}

// GetPage returns the page for code. Unknown codes (and an empty code) get
// the 404 content while keeping the requested code. A non-empty message
// replaces the catalog message.
func GetPage(code, message string) Page {
	if code == "" {
		code = "404"
	}

	page, ok := catalog[code]
	if !ok {
		page = catalog["404"]
	}
	page.Code = code
	if message != "" {
		page.Message = message
	}

	page.Actions = []string{"back", "home"}
	if page.Retryable {
		page.Actions = append(page.Actions, "reload")
	}
	return page
}
