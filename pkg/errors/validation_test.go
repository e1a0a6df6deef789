package errors

import (
	"testing"
)

func TestValidateGraphName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "talker", false},
		{"valid absolute", "/talker", false},
		{"valid namespaced", "/robot1/camera/driver", false},
		{"valid with underscore", "/joint_state_publisher", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 300)), true},
		{"path traversal ..", "/foo/../bar", true},
		{"double slash", "/foo//bar", true},
		{"null byte", "/foo\x00bar", true},
		{"backslash", "/foo\\bar", true},
		{"control char", "/foo\x01bar", true},
		{"newline", "/foo\nbar", true},
		{"carriage return", "/foo\rbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGraphName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateGraphName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateNodeName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid absolute", "/talker", false},
		{"valid relative", "talker", false},
		{"valid namespaced", "/ns/sub/talker", false},
		{"valid private", "~/params", false},
		{"valid underscore segment", "/_internal", false},

		{"empty", "", true},
		{"digit start", "/1talker", true},
		{"dash", "/my-node", true},
		{"space", "/my node", true},
		{"trailing slash", "/talker/", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNodeName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateNodeName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateTopicName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid chatter", "/chatter", false},
		{"valid nested", "/camera/image_raw", false},

		{"empty", "", true},
		{"dot segment", "/camera/.raw", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTopicName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTopicName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid relative", "out/graph.svg", false},
		{"valid absolute", "/tmp/graph.png", false},
		{"valid simple", "graph.json", false},

		{"empty", "", true},
		{"path traversal", "../graph.svg", true},
		{"null byte", "graph\x00.svg", true},
		{"control char", "graph\x01.svg", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateExportFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"json", "json", false},
		{"dot", "dot", false},
		{"svg", "svg", false},
		{"png", "png", false},

		{"empty", "", true},
		{"pdf", "pdf", true},
		{"uppercase", "SVG", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateExportFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateExportFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
