package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrForbidden
	ErrInvalidCredential
	ErrUpstream
	ErrMissingProductID
	ErrMissingReason
	ErrInvalidStatus
	ErrInvalidFeeValue
)

// ErrorTypeMessage holds the toast text shown to the admin. Raw upstream detail only goes to the log.
var ErrorTypeMessage = map[ErrorType]string{
	Successful:           "Thành công",
	ErrInternal:          "Đã xảy ra lỗi hệ thống, vui lòng thử lại sau",
	ErrNotFound:          "Không tìm thấy dữ liệu",
	ErrInvalidRequest:    "Yêu cầu không hợp lệ",
	ErrUnauthorize:       "Phiên đăng nhập không hợp lệ hoặc đã hết hạn",
	ErrForbidden:         "Bạn không có quyền thực hiện thao tác này",
	ErrInvalidCredential: "Email hoặc mật khẩu không đúng",
	ErrUpstream:          "Không thể xử lý yêu cầu với máy chủ, vui lòng thử lại",
	ErrMissingProductID:  "Thiếu mã sản phẩm",
	ErrMissingReason:     "Vui lòng nhập lý do từ chối",
	ErrInvalidStatus:     "Trạng thái không hợp lệ",
	ErrInvalidFeeValue:   "Giá trị phí không hợp lệ",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:           http.StatusOK,
	ErrInternal:          http.StatusInternalServerError,
	ErrNotFound:          http.StatusNotFound,
	ErrInvalidRequest:    http.StatusBadRequest,
	ErrUnauthorize:       http.StatusUnauthorized,
	ErrForbidden:         http.StatusForbidden,
	ErrInvalidCredential: http.StatusBadRequest,
	ErrUpstream:          http.StatusBadGateway,
	ErrMissingProductID:  http.StatusBadRequest,
	ErrMissingReason:     http.StatusBadRequest,
	ErrInvalidStatus:     http.StatusBadRequest,
	ErrInvalidFeeValue:   http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:           "0000",
	ErrInternal:          "0001",
	ErrNotFound:          "0002",
	ErrInvalidRequest:    "0003",
	ErrUnauthorize:       "0004",
	ErrForbidden:         "0005",
	ErrInvalidCredential: "0006",
	ErrUpstream:          "0007",
	ErrMissingProductID:  "0008",
	ErrMissingReason:     "0009",
	ErrInvalidStatus:     "0010",
	ErrInvalidFeeValue:   "0011",
}
