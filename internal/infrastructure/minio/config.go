package minio

type ClientConfig struct {
	AccessKey string
	SecretKey string
	Endpoint  string `yaml:"endpoint"`
	UseSSL    bool   `yaml:"use_ssl"`
}

type UploaderConfig struct {
	Timeout       int64  `yaml:"timeout_in_ms"`
	Bucket        string `yaml:"bucket"`
	PublicAddress string `yaml:"public_address"`
}

type RemoverConfig struct {
	Timeout int64  `yaml:"timeout_in_ms"`
	Bucket  string `yaml:"bucket"`
}

type GetterConfig struct {
	Timeout int64  `yaml:"timeout_in_ms"`
	Bucket  string `yaml:"bucket"`
}
