package util

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

// 表单字段
const (
	FormName        = "name"
	FormScorePrefix = "q"
)

const (
	MsgDataUnavailable = "❌ 데이터 파일을 읽을 수 없습니다."
	MsgInvalidScores   = "모든 문항에 1~5 사이의 점수를 입력해 주세요."
)
