package releasenotes

import (
	"slices"
	"testing"
)

func TestNormalizeUpgrade(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Upgrade BatchEE to 0.6", "BatchEE 0.6"},
		{"Upgrade CXF to 3.3.10 / 3.4.3 in TomEE", "CXF 3.3.10 / 3.4.3"},
		{"Update CXF 3.3.8", "CXF 3.3.8"},
		{"Upgrade CXF 3.4.x (Java 16 support)", "CXF 3.4.x (Java 16 support)"},
		{"Update EclipseLink to 2.7.7", "EclipseLink 2.7.7"},
		{"Implement JAX-RS SSE and add example", "Implement JAX-RS SSE and add example"},
		{"Apache Johnzon 1.2.9", "Johnzon 1.2.9"},
		{"Update Johnzon 1.2.9", "Johnzon 1.2.9"},
		{"Upgrade MyFaces 2.3.8", "MyFaces 2.3.8"},
		{"Upgrade MyFaces to 2.3.9", "MyFaces 2.3.9"},
		{"Update OWB 2.0.22", "OWB 2.0.22"},
		{"Update OpenSAML to V3.4.6", "OpenSAML V3.4.6"},
		{"Upgrade Tomcat 9.0.41", "Tomcat 9.0.41"},
		{"Update Tomcat to 9.0.43", "Tomcat 9.0.43"},
		{"Upgrade Tomcat to 9.0.44", "Tomcat 9.0.44"},
		{"Update bcprov-jdk15on to 1.67", "bcprov-jdk15on 1.67"},
		{"Upgrade quartz-openejb-shade in TomEE 8/9", "quartz-openejb-shade"},
		{"Upgrade xbean to 4.18+ (Java 16 support)", "xbean 4.18+ (Java 16 support)"},
		{"upgrade to Apache Commons 2 apache", "Commons 2 apache"},
	}
	for _, tt := range tests {
		if got := NormalizeUpgrade(tt.in); got != tt.want {
			t.Errorf("NormalizeUpgrade(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRemoveSuperseded(t *testing.T) {
	issues := []Issue{
		{Key: "T-1"},
		{Key: "T-2", Links: []Link{{Type: "Supercedes", Direction: Outbound, Target: "T-1"}}},
		{Key: "T-3", Links: []Link{{Type: "supersedes", Direction: Inbound, Target: "T-4"}}},
		{Key: "T-4"},
		{Key: "T-5", Links: []Link{{Type: "Relates", Direction: Outbound, Target: "T-4"}}},
		{Key: "T-6", Links: []Link{{Type: "SUPERSEDES", Direction: "OUTBOUND", Target: "T-9"}}},
	}

	var got []string
	for _, is := range RemoveSuperseded(issues) {
		got = append(got, is.Key)
	}
	want := []string{"T-2", "T-3", "T-4", "T-5", "T-6"}
	if !slices.Equal(got, want) {
		t.Errorf("RemoveSuperseded() = %v, want %v", got, want)
	}
}
