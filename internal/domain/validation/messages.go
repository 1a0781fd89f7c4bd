package validation

import (
	"strconv"
	"strings"
)

// Default messages are written for the Korean client.

func requiredMessage(kor string) string {
	return kor + "은(는) 필수 입력 항목입니다."
}

func equalsMessage(kor string, n int) string {
	return kor + "은(는) " + strconv.Itoa(n) + "글자만 허용됩니다"
}

func minMessage(kor string, n int) string {
	return kor + "은(는) " + strconv.Itoa(n) + "글자 이상이어야 합니다."
}

func maxMessage(kor string, n int) string {
	return kor + "은(는) " + strconv.Itoa(n) + "글자 이하여야 합니다."
}

func formatMessage(kor string) string {
	return kor + "의 형식을 확인해 주세요."
}

func duplicateMessage(kor string) string {
	return "이미 존재하는 " + kor + "입니다."
}

func optionsMessage(kor string, options []string) string {
	return kor + "은(는) " + strings.Join(options, ",") + " 중 하나여야 합니다."
}
