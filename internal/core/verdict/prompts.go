package verdict

// Built-in verify prompt templates, used when the config carries none.
// Placeholders, in order: claim, evidence block, fact-check block, current
// year (referenced twice).
var defaultVerifyPrompts = map[string]string{
	"en": `You are a fact verification system. Analyze the following claim for factual accuracy.

Claim: "%s"

Independent evidence retrieved for this claim:
%s

Published fact-checks for this claim:
%s

The current calendar year is %d. If the claim refers to events in a year after %[4]d, you cannot verify it: return verdict "unknown" with confidence below 0.5 and an explanation citing the future date.

Be objective and ground your answer in the evidence above. Respond ONLY with a JSON object with exactly these keys:
- verdict: "true", "false", "misleading", "unverified" or "unknown"
- confidence: number between 0.0 and 1.0
- explanation: detailed reasoning
- key_facts: array of strings
- citations: array of {"title", "url", "source"} objects
- fact_check_results: array of {"claim_text", "publisher", "rating", "url"} objects
- timestamp: ISO-8601 timestamp`,

	"hi": `आप एक तथ्य-सत्यापन प्रणाली हैं। निम्नलिखित दावे का तथ्यात्मक सटीकता के लिए विश्लेषण करें।

दावा: "%s"

इस दावे के लिए प्राप्त स्वतंत्र साक्ष्य:
%s

इस दावे के प्रकाशित तथ्य-जांच परिणाम:
%s

वर्तमान वर्ष %d है। यदि दावा %[4]d के बाद के वर्ष की घटनाओं का उल्लेख करता है, तो verdict "unknown" लौटाएं, confidence 0.5 से कम रखें और explanation में भविष्य की तिथि का उल्लेख करें।

वस्तुनिष्ठ रहें और ऊपर दिए गए साक्ष्य पर आधारित उत्तर दें। केवल JSON ऑब्जेक्ट में उत्तर दें, जिसमें ये कुंजियाँ हों:
verdict ("true"|"false"|"misleading"|"unverified"|"unknown"), confidence (0.0–1.0), explanation, key_facts (स्ट्रिंग सरणी), citations ({"title","url","source"} सरणी), fact_check_results ({"claim_text","publisher","rating","url"} सरणी), timestamp (ISO-8601)`,

	"ta": `நீங்கள் ஒரு உண்மை-சரிபார்ப்பு அமைப்பு. பின்வரும் கூற்றின் உண்மைத் துல்லியத்தை பகுப்பாய்வு செய்யவும்.

கூற்று: "%s"

இந்தக் கூற்றுக்காகப் பெறப்பட்ட சுயாதீன ஆதாரங்கள்:
%s

இந்தக் கூற்றுக்கான வெளியிடப்பட்ட உண்மை-சரிபார்ப்புகள்:
%s

நடப்பு ஆண்டு %d. கூற்று %[4]d க்குப் பிந்தைய ஆண்டின் நிகழ்வுகளைக் குறிப்பிட்டால், verdict "unknown" எனத் திருப்பவும், confidence 0.5 க்கும் குறைவாக வைக்கவும், எதிர்கால தேதியை explanation இல் குறிப்பிடவும்.

புறநிலையாக இருங்கள், மேலே உள்ள ஆதாரங்களின் அடிப்படையில் பதிலளிக்கவும். இந்த விசைகளுடன் JSON பொருளாக மட்டுமே பதிலளிக்கவும்:
verdict ("true"|"false"|"misleading"|"unverified"|"unknown"), confidence (0.0–1.0), explanation, key_facts, citations ({"title","url","source"}), fact_check_results ({"claim_text","publisher","rating","url"}), timestamp (ISO-8601)`,
}
