package domain

// MinIOEvent represents a MinIO bucket notification
type MinIOEvent struct {
	EventName string `json:"EventName"`
	Key       string `json:"Key"`
	Records   []struct {
		EventName string `json:"eventName"`
		S3        struct {
			Bucket struct {
				Name string `json:"name"`
			} `json:"bucket"`
			Object struct {
				Key         string `json:"key"`
				Size        int64  `json:"size"`
				ETag        string `json:"eTag"`
				ContentType string `json:"contentType"`
			} `json:"object"`
		} `json:"s3"`
		EventTime string `json:"eventTime"`
	} `json:"Records"`
}

// UploadNotification is a storage notification reduced to what ingest needs
type UploadNotification struct {
	EventName   string
	StorageName string
	ObjectKey   string
	ObjectSize  int64
	ObjectETag  string
}
