package txt

// codePatterns are emitted verbatim as lines of the "code" kind.
var codePatterns = [...]string{
	"#include <iostream>",
	"int main() {",
	"for (int i = 0; i < n; i++) {",
	"if (condition) {",
	"while (true) {",
	"return 0;",
	"}",
	"// This is a comment",
	"/* Multi-line",
	"   comment */",
	"std::cout << \"Hello World\" << std::endl;",
	"auto result = function_call(parameter);",
	"class MyClass {",
	"public:",
	"private:",
	"protected:",
	"template<typename T>",
	"namespace my_namespace {",
	"using namespace std;",
	"const int MAX_SIZE = 1000;",
	"static constexpr double PI = 3.14159;",
	"vector<string> data;",
	"map<string, int> counts;",
	"try {",
	"catch (exception& e) {",
	"throw runtime_error(\"error\");",
}

// commonWords feed the "text" and "comment" kinds.
var commonWords = [...]string{
	"function", "variable", "constant", "array", "object", "class",
	"method", "property", "iterator", "algorithm", "container", "template",
	"namespace", "exception", "pointer", "reference", "memory", "buffer",
	"string", "integer", "boolean", "character", "floating", "double",
	"public", "private", "protected", "static", "virtual", "const",
	"include", "define", "typedef", "struct", "union", "enum",
}

// textTerminators is weighted by repetition: half of all text lines end bare.
var textTerminators = [...]string{";", " {", "", ""}
