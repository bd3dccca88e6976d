package emitter

// cKeywords cannot name anything in the generated C, variables or labels.
var cKeywords = map[string]bool{
	"auto": true, "break": true, "case": true, "char": true, "const": true,
	"continue": true, "default": true, "do": true, "double": true, "else": true,
	"enum": true, "extern": true, "float": true, "for": true, "goto": true,
	"if": true, "inline": true, "int": true, "long": true, "register": true,
	"restrict": true, "return": true, "short": true, "signed": true, "sizeof": true,
	"static": true, "struct": true, "switch": true, "typedef": true, "union": true,
	"unsigned": true, "void": true, "volatile": true, "while": true,
	"_Alignas": true, "_Alignof": true, "_Atomic": true, "_Bool": true, "_Complex": true,
	"_Generic": true, "_Imaginary": true, "_Noreturn": true, "_Static_assert": true,
	"_Thread_local": true,
	// C23
	"alignas": true, "alignof": true, "bool": true, "constexpr": true, "false": true,
	"nullptr": true, "static_assert": true, "thread_local": true, "true": true,
	"typeof": true, "typeof_unqual": true, "_BitInt": true, "_Decimal32": true,
	"_Decimal64": true, "_Decimal128": true,
}

// stdioNames would shadow the functions the generated code calls, or are
// object-like macros from <stdio.h>.
var stdioNames = map[string]bool{
	"printf": true, "scanf": true,
	"EOF": true, "NULL": true, "BUFSIZ": true, "FILENAME_MAX": true, "FOPEN_MAX": true,
	"L_tmpnam": true, "TMP_MAX": true, "SEEK_SET": true, "SEEK_CUR": true, "SEEK_END": true,
	"_IOFBF": true, "_IOLBF": true, "_IONBF": true,
	"stdin": true, "stdout": true, "stderr": true,
}

// IsReservedVariable reports whether name cannot be declared as an int in
// the generated main.
func IsReservedVariable(name string) bool {
	return cKeywords[name] || stdioNames[name]
}

// IsReservedLabel reports whether name cannot be used as a C label.
// Labels live in their own namespace, so only keywords collide.
func IsReservedLabel(name string) bool {
	return cKeywords[name]
}
