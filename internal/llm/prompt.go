package llm

import (
	"fmt"
	"strings"
)

// buildPrompt creates the fixed instructional prompt for the given word.
func buildPrompt(word string) string {
	var sb strings.Builder

	sb.WriteString("You are an expert in Spanish etymology and historical linguistics.\n\n")
	sb.WriteString(fmt.Sprintf("Analyze the Spanish word: %s\n\n", word))

	sb.WriteString("Respond with ONLY a JSON object, no prose before or after, using exactly these keys:\n")
	sb.WriteString("{\n")
	sb.WriteString("  \"word\": the word being analyzed,\n")
	sb.WriteString("  \"englishMeaning\": its English meaning,\n")
	sb.WriteString("  \"etymology\": a short prose history of the word's origin,\n")
	sb.WriteString("  \"relatedEnglishWords\": an array of English words sharing the same root,\n")
	sb.WriteString("  \"mnemonic\": a vivid memory aid connecting the word to its meaning,\n")
	sb.WriteString("  \"sampleSentences\": an array of {\"spanish\": ..., \"english\": ...} pairs,\n")
	sb.WriteString("  \"confidence\": \"high\", \"medium\" or \"low\",\n")
	sb.WriteString("  \"languageFamily\": the word's language family (e.g. \"Romance\", \"Arabic loan\"),\n")
	sb.WriteString("  \"pronunciation\": a simple phonetic spelling for English speakers\n")
	sb.WriteString("}\n\n")

	sb.WriteString("Requirements:\n")
	sb.WriteString("1. The etymology should trace the word back to its earliest known root\n")
	sb.WriteString("2. Related English words must genuinely share the root, not just look similar\n")
	sb.WriteString("3. Give two or three sample sentences at a beginner level\n")
	sb.WriteString("4. The mnemonic should lean on the shared root where one exists\n")

	return sb.String()
}
