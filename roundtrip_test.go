package bridgegen

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wippyai/bridgegen/shim"
)

// TestGeneratedBridgeRoundTrip builds the generated files together with a C++
// driver under cgo and runs new, len, data, stride and iteration from C++
// for every element type.
func TestGeneratedBridgeRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("builds a cgo package")
	}
	goBin, err := exec.LookPath("go")
	if err != nil {
		t.Skip("go command not found")
	}
	if goEnv(t, goBin, "CGO_ENABLED") != "1" {
		t.Skip("cgo disabled")
	}
	cxx := strings.Fields(goEnv(t, goBin, "CXX"))
	if len(cxx) == 0 {
		t.Skip("no C++ compiler configured")
	}
	if _, err := exec.LookPath(cxx[0]); err != nil {
		t.Skipf("C++ compiler %s not found", cxx[0])
	}

	repo, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	elems := shim.Elements()
	files, err := Generate(Options{Package: "bridgetest", Elements: elems}, nil)
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	if err := files.WriteDir(dir); err != nil {
		t.Fatal(err)
	}
	writeFile(t, dir, "go.mod", "module bridgetest\n\ngo 1.25.4\n")
	writeFile(t, dir, "go.work", fmt.Sprintf("go 1.25.4\n\nuse (\n\t.\n\t%q\n)\n", repo))
	writeFile(t, dir, "push.go", pushSource(elems))
	writeFile(t, dir, "roundtrip.go", runnerSource(elems))
	writeFile(t, dir, "roundtrip.cc", driverSource(elems))
	writeFile(t, dir, "roundtrip_test.go", runnerTestSource(elems))

	cmd := exec.CommandContext(t.Context(), goBin, "test", "-count=1", ".")
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"CGO_ENABLED=1",
		"GOWORK="+filepath.Join(dir, "go.work"),
		"GOFLAGS=",
		"GODEBUG=cgocheck=1",
	)
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("go test in generated package: %v\n%s", err, output)
	}
}

func goEnv(t *testing.T, goBin, key string) string {
	t.Helper()
	output, err := exec.Command(goBin, "env", key).Output()
	if err != nil {
		t.Skipf("go env %s: %v", key, err)
	}
	return strings.TrimSpace(string(output))
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// pushValue is the Go expression for the i-th test value of e.
func pushValue(e shim.Element) string {
	switch e.Segment {
	case "bool":
		return "i%2 == 1"
	case "string":
		return `"elem-" + strconv.Itoa(int(i))`
	default:
		return e.GoType + "(i)"
	}
}

// matcher is the C++ function comparing an element with the i-th test value.
func matcher(e shim.Element) string {
	switch e.Segment {
	case "bool":
		return "same_bool"
	case "string":
		return "same_string"
	default:
		return "same_number<" + e.CxxType + ">"
	}
}

func pushSource(elems []shim.Element) string {
	var b strings.Builder
	b.WriteString("package bridgetest\n\nimport \"C\"\n\n")
	b.WriteString("import (\n\t\"runtime\"\n\t\"strconv\"\n\t\"unsafe\"\n\n\t\"github.com/wippyai/bridgegen/rt\"\n)\n")
	b.WriteString("\nvar _ = strconv.Itoa\n")
	for _, e := range elems {
		fmt.Fprintf(&b, "\n//export bridgetest_push_%s\n", e.Segment)
		fmt.Fprintf(&b, "func bridgetest_push_%s(h unsafe.Pointer, i C.int) {\n", e.Segment)
		fmt.Fprintf(&b, "\trt.SliceAppend[%s](h, %s)\n", e.GoType, pushValue(e))
		b.WriteString("\tif i%16 == 0 {\n\t\truntime.GC()\n\t}\n}\n")
	}
	return b.String()
}

func runnerSource(elems []shim.Element) string {
	var b strings.Builder
	b.WriteString("package bridgetest\n\n/*\n#cgo CXXFLAGS: -std=c++17\n")
	for _, e := range elems {
		fmt.Fprintf(&b, "int bridgetest_roundtrip_%s(void);\n", e.Segment)
	}
	b.WriteString("*/\nimport \"C\"\n\n")
	b.WriteString("func RoundTrip(segment string) int {\n\tswitch segment {\n")
	for _, e := range elems {
		fmt.Fprintf(&b, "\tcase %q:\n\t\treturn int(C.bridgetest_roundtrip_%s())\n", e.Segment, e.Segment)
	}
	b.WriteString("\t}\n\treturn -1\n}\n")
	return b.String()
}

func runnerTestSource(elems []shim.Element) string {
	var b strings.Builder
	b.WriteString("package bridgetest\n\nimport \"testing\"\n\n")
	b.WriteString("func TestRoundTrip(t *testing.T) {\n\tfor _, seg := range []string{")
	for i, e := range elems {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%q", e.Segment)
	}
	b.WriteString("} {\n\t\tt.Run(seg, func(t *testing.T) {\n")
	b.WriteString("\t\t\tif code := RoundTrip(seg); code != 0 {\n")
	b.WriteString("\t\t\t\tt.Errorf(\"failure code %d\", code)\n\t\t\t}\n\t\t})\n\t}\n}\n")
	return b.String()
}

const driverPrologue = `#include "bridge.h"

#include <cstring>
#include <string>

template <typename T>
static int roundtrip(void (*push)(void *, int), bool (*matches)(const T &, int)) {
  ::gobridge::Slice<T> s;
  if (s.size() != 0 || !s.empty()) {
    return 1;
  }
  push(&s, 1);
  if (s.size() != 1) {
    return 2;
  }
  if (s.data() != &s[0]) {
    return 3;
  }
  if (!matches(s[0], 1)) {
    return 4;
  }
  if (::gobridge::Slice<T>::stride() != sizeof(T)) {
    return 5;
  }
  for (int i = 2; i <= 40; i++) {
    push(&s, i);
  }
  if (s.size() != 40) {
    return 6;
  }
  int n = 1;
  for (const T &v : s) {
    if (!matches(v, n)) {
      return 7;
    }
    n++;
  }
  return 0;
}

template <typename T>
static bool same_number(const T &v, int i) {
  return v == static_cast<T>(i);
}

static bool same_bool(const bool &v, int i) {
  return v == (i % 2 == 1);
}

static bool same_string(const ::gobridge::String &v, int i) {
  std::string want = "elem-" + std::to_string(i);
  return v.len == want.size() && std::memcmp(v.ptr, want.data(), v.len) == 0;
}
`

func driverSource(elems []shim.Element) string {
	var b strings.Builder
	b.WriteString(driverPrologue)
	b.WriteString("\nextern \"C\" {\n")
	for _, e := range elems {
		fmt.Fprintf(&b, "void bridgetest_push_%s(void *h, int i);\n", e.Segment)
	}
	for _, e := range elems {
		fmt.Fprintf(&b, "\nint bridgetest_roundtrip_%s(void) {\n", e.Segment)
		fmt.Fprintf(&b, "  return roundtrip<%s>(bridgetest_push_%s, %s);\n}\n", e.CxxType, e.Segment, matcher(e))
	}
	b.WriteString("} // extern \"C\"\n")
	return b.String()
}
