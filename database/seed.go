package database

import (
	"context"
	"strings"

	apperrors "wellness-bot/errors"
	"wellness-bot/kb"
)

// SeedIfEmpty loads the starter knowledge base when the conditions table has
// no rows, so a fresh deployment answers queries immediately. Returns the
// number of conditions inserted (0 when the table was already populated).
func (s *PostgresStore) SeedIfEmpty(ctx context.Context) (int, error) {
	var count int
	if err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM conditions`).Scan(&count); err != nil {
		return 0, apperrors.WrapError(err, "failed to count conditions")
	}
	if count > 0 {
		return 0, nil
	}

	for _, cond := range seedConditions {
		if cond.IntentCategory == "" {
			cond.IntentCategory = strings.ReplaceAll(strings.ToLower(cond.CanonicalID), " ", "_")
		}
		if err := s.UpsertCondition(ctx, cond); err != nil {
			return 0, err
		}
	}
	return len(seedConditions), nil
}

var defaultDisclaimer = kb.Bilingual{
	EN: "This is general wellness information, not medical advice. Consult a qualified doctor for diagnosis and treatment.",
	HI: "यह सामान्य स्वास्थ्य जानकारी है, चिकित्सीय सलाह नहीं। निदान और उपचार के लिए योग्य डॉक्टर से परामर्श करें।",
}

var seedConditions = []kb.Condition{
	{
		CanonicalID: "Fever",
		DisplayName: kb.Bilingual{EN: "Fever", HI: "बुखार"},
		Description: kb.Bilingual{
			EN: "Fever is a temporary rise in body temperature, usually a sign the body is fighting an infection.",
			HI: "बुखार शरीर के तापमान में अस्थायी वृद्धि है, जो आमतौर पर संक्रमण से लड़ने का संकेत है।",
		},
		Symptoms: kb.Bilingual{
			EN: "High temperature, chills, sweating, body ache, weakness.",
			HI: "तेज़ तापमान, ठिठुरन, पसीना, बदन दर्द, कमज़ोरी।",
		},
		FirstAid: kb.Bilingual{
			EN: "Rest, drink plenty of fluids, use a light cold compress on the forehead.",
			HI: "आराम करें, खूब तरल पदार्थ पिएँ, माथे पर हल्की ठंडी पट्टी रखें।",
		},
		Prevention: kb.Bilingual{
			EN: "Wash hands regularly, avoid contact with sick people, stay hydrated.",
			HI: "नियमित हाथ धोएँ, बीमार लोगों के संपर्क से बचें, पर्याप्त पानी पिएँ।",
		},
		Disclaimer: defaultDisclaimer,
	},
	{
		CanonicalID: "Headache",
		DisplayName: kb.Bilingual{EN: "Headache", HI: "सिरदर्द"},
		Description: kb.Bilingual{
			EN: "A headache is pain in the head or upper neck, often caused by tension, dehydration or lack of sleep.",
			HI: "सिरदर्द सिर या गर्दन के ऊपरी हिस्से का दर्द है, जो अक्सर तनाव, पानी की कमी या नींद की कमी से होता है।",
		},
		Symptoms: kb.Bilingual{
			EN: "Dull or throbbing pain in the head, sensitivity to light or sound.",
			HI: "सिर में हल्का या धड़कता दर्द, रोशनी या आवाज़ से परेशानी।",
		},
		FirstAid: kb.Bilingual{
			EN: "Rest in a quiet dark room, drink water, apply a cool cloth to the forehead.",
			HI: "शांत अंधेरे कमरे में आराम करें, पानी पिएँ, माथे पर ठंडा कपड़ा रखें।",
		},
		Prevention: kb.Bilingual{
			EN: "Sleep regularly, limit screen time, manage stress, stay hydrated.",
			HI: "नियमित नींद लें, स्क्रीन समय सीमित करें, तनाव कम करें, पर्याप्त पानी पिएँ।",
		},
		Disclaimer: defaultDisclaimer,
	},
	{
		CanonicalID: "Cough",
		DisplayName: kb.Bilingual{EN: "Cough", HI: "खांसी"},
		Description: kb.Bilingual{
			EN: "A cough is a reflex that clears the throat and airways of irritants and mucus.",
			HI: "खांसी एक प्रतिक्रिया है जो गले और श्वास नली से धूल और बलगम साफ़ करती है।",
		},
		Symptoms: kb.Bilingual{
			EN: "Dry or wet cough, throat irritation, chest discomfort.",
			HI: "सूखी या बलगम वाली खांसी, गले में खराश, सीने में बेचैनी।",
		},
		FirstAid: kb.Bilingual{
			EN: "Sip warm water with honey, avoid cold drinks, gargle with warm salt water.",
			HI: "शहद के साथ गुनगुना पानी पिएँ, ठंडे पेय से बचें, नमक के गुनगुने पानी से गरारे करें।",
		},
		Prevention: kb.Bilingual{
			EN: "Avoid dust and smoke, cover your mouth around others, keep the throat warm.",
			HI: "धूल और धुएँ से बचें, दूसरों के पास मुँह ढकें, गला गर्म रखें।",
		},
		Disclaimer: defaultDisclaimer,
	},
	{
		CanonicalID: "Common Cold",
		DisplayName: kb.Bilingual{EN: "Common Cold", HI: "सर्दी ज़ुकाम"},
		Description: kb.Bilingual{
			EN: "The common cold is a mild viral infection of the nose and throat.",
			HI: "सर्दी ज़ुकाम नाक और गले का हल्का वायरल संक्रमण है।",
		},
		Symptoms: kb.Bilingual{
			EN: "Runny or blocked nose, sneezing, mild sore throat, light fever.",
			HI: "बहती या बंद नाक, छींकें, हल्की गले की खराश, हल्का बुखार।",
		},
		FirstAid: kb.Bilingual{
			EN: "Rest, drink warm fluids, inhale steam to ease congestion.",
			HI: "आराम करें, गर्म तरल पिएँ, भाप लें ताकि नाक खुले।",
		},
		Prevention: kb.Bilingual{
			EN: "Wash hands often, avoid close contact with infected people.",
			HI: "बार-बार हाथ धोएँ, संक्रमित लोगों के नज़दीकी संपर्क से बचें।",
		},
		Disclaimer: defaultDisclaimer,
	},
	{
		CanonicalID: "Dizziness",
		DisplayName: kb.Bilingual{EN: "Dizziness", HI: "चक्कर आना"},
		Description: kb.Bilingual{
			EN: "Dizziness is a feeling of lightheadedness or loss of balance, often from dehydration or low blood pressure.",
			HI: "चक्कर आना हल्कापन या संतुलन खोने का अहसास है, जो अक्सर पानी की कमी या कम रक्तचाप से होता है।",
		},
		Symptoms: kb.Bilingual{
			EN: "Lightheadedness, unsteadiness, blurred vision, feeling faint.",
			HI: "सिर हल्का लगना, लड़खड़ाहट, धुंधली दृष्टि, बेहोशी जैसा लगना।",
		},
		FirstAid: kb.Bilingual{
			EN: "Sit or lie down immediately, drink water, breathe slowly and deeply.",
			HI: "तुरंत बैठ या लेट जाएँ, पानी पिएँ, धीरे और गहरी साँस लें।",
		},
		Prevention: kb.Bilingual{
			EN: "Stay hydrated, stand up slowly, eat regular meals.",
			HI: "पर्याप्त पानी पिएँ, धीरे-धीरे खड़े हों, समय पर भोजन करें।",
		},
		Disclaimer: defaultDisclaimer,
	},
	{
		CanonicalID: "Fatigue",
		DisplayName: kb.Bilingual{EN: "Fatigue", HI: "थकान"},
		Description: kb.Bilingual{
			EN: "Fatigue is persistent tiredness not relieved by rest, often linked to poor sleep, stress or diet.",
			HI: "थकान लगातार बनी रहने वाली थकावट है जो आराम से नहीं जाती, अक्सर खराब नींद, तनाव या आहार से जुड़ी होती है।",
		},
		Symptoms: kb.Bilingual{
			EN: "Low energy, difficulty concentrating, sleepiness during the day.",
			HI: "ऊर्जा की कमी, ध्यान लगाने में कठिनाई, दिन में नींद आना।",
		},
		FirstAid: kb.Bilingual{
			EN: "Take short rest breaks, hydrate, eat a balanced snack.",
			HI: "छोटे आराम के अंतराल लें, पानी पिएँ, संतुलित नाश्ता करें।",
		},
		Prevention: kb.Bilingual{
			EN: "Keep a regular sleep schedule, exercise moderately, manage workload.",
			HI: "नियमित नींद का समय रखें, हल्का व्यायाम करें, काम का बोझ संतुलित रखें।",
		},
		Disclaimer: defaultDisclaimer,
	},
	{
		CanonicalID: "Nausea",
		DisplayName: kb.Bilingual{EN: "Nausea", HI: "मतली"},
		Description: kb.Bilingual{
			EN: "Nausea is an uneasy feeling in the stomach with an urge to vomit.",
			HI: "मतली पेट में बेचैनी और उल्टी की इच्छा का अहसास है।",
		},
		Symptoms: kb.Bilingual{
			EN: "Queasy stomach, urge to vomit, loss of appetite.",
			HI: "पेट में घबराहट, उल्टी की इच्छा, भूख न लगना।",
		},
		FirstAid: kb.Bilingual{
			EN: "Sip clear fluids slowly, rest sitting upright, try ginger tea.",
			HI: "साफ़ तरल धीरे-धीरे पिएँ, सीधे बैठकर आराम करें, अदरक की चाय लें।",
		},
		Prevention: kb.Bilingual{
			EN: "Eat small frequent meals, avoid oily food, don't lie down right after eating.",
			HI: "थोड़ा-थोड़ा भोजन बार-बार करें, तली चीज़ों से बचें, खाने के तुरंत बाद न लेटें।",
		},
		Disclaimer: defaultDisclaimer,
	},
	{
		CanonicalID: "Stress",
		DisplayName: kb.Bilingual{EN: "Stress", HI: "तनाव"},
		Description: kb.Bilingual{
			EN: "Stress is the body's response to pressure; prolonged stress affects sleep, mood and health.",
			HI: "तनाव दबाव के प्रति शरीर की प्रतिक्रिया है; लंबा तनाव नींद, मन और सेहत पर असर डालता है।",
		},
		Symptoms: kb.Bilingual{
			EN: "Restlessness, irritability, trouble sleeping, tension headaches.",
			HI: "बेचैनी, चिड़चिड़ापन, नींद में परेशानी, तनाव से सिरदर्द।",
		},
		FirstAid: kb.Bilingual{
			EN: "Pause and breathe deeply, take a short walk, talk to someone you trust.",
			HI: "रुककर गहरी साँस लें, थोड़ी देर टहलें, किसी भरोसेमंद व्यक्ति से बात करें।",
		},
		Prevention: kb.Bilingual{
			EN: "Practice daily relaxation, keep a routine, limit caffeine late in the day.",
			HI: "रोज़ विश्राम का अभ्यास करें, दिनचर्या बनाए रखें, देर शाम कैफ़ीन सीमित करें।",
		},
		Disclaimer: defaultDisclaimer,
	},
	{
		CanonicalID: "Emotional Wellness",
		DisplayName: kb.Bilingual{EN: "Emotional Wellness", HI: "भावनात्मक स्वास्थ्य"},
		Description: kb.Bilingual{
			EN: "Emotional wellness is the ability to understand and manage feelings like sadness, worry and frustration.",
			HI: "भावनात्मक स्वास्थ्य उदासी, चिंता और खीज जैसी भावनाओं को समझने और संभालने की क्षमता है।",
		},
		Symptoms: kb.Bilingual{
			EN: "Feeling hopeless, worried, frustrated or isolated for extended periods.",
			HI: "लंबे समय तक निराश, चिंतित, खीजा हुआ या अकेला महसूस करना।",
		},
		FirstAid: kb.Bilingual{
			EN: "Acknowledge the feeling, reach out to someone you trust, avoid being alone with heavy thoughts.",
			HI: "भावना को स्वीकारें, किसी भरोसेमंद व्यक्ति से संपर्क करें, भारी विचारों के साथ अकेले न रहें।",
		},
		Prevention: kb.Bilingual{
			EN: "Stay connected with people, keep regular sleep and meals, make time for activities you enjoy.",
			HI: "लोगों से जुड़े रहें, नींद और भोजन नियमित रखें, पसंदीदा गतिविधियों के लिए समय निकालें।",
		},
		Disclaimer: kb.Bilingual{
			EN: "If you feel unsafe or think of harming yourself, contact a mental health helpline or doctor immediately.",
			HI: "यदि आप असुरक्षित महसूस करें या खुद को नुकसान पहुँचाने का विचार आए, तो तुरंत मानसिक स्वास्थ्य हेल्पलाइन या डॉक्टर से संपर्क करें।",
		},
	},
	{
		CanonicalID: "Minor Burns",
		DisplayName: kb.Bilingual{EN: "Minor Burns", HI: "मामूली जलन"},
		Description: kb.Bilingual{
			EN: "Minor burns are small first-degree burns affecting only the outer layer of skin.",
			HI: "मामूली जलन त्वचा की बाहरी परत को प्रभावित करने वाली छोटी जलन है।",
		},
		Symptoms: kb.Bilingual{
			EN: "Redness, mild swelling, pain at the burn site.",
			HI: "लालिमा, हल्की सूजन, जली जगह पर दर्द।",
		},
		FirstAid: kb.Bilingual{
			EN: "Cool the burn under running water for 10 minutes, cover loosely with a clean cloth. Do not apply ice or toothpaste.",
			HI: "जले हिस्से को 10 मिनट बहते पानी में ठंडा करें, साफ़ कपड़े से ढीला ढकें। बर्फ़ या टूथपेस्ट न लगाएँ।",
		},
		Prevention: kb.Bilingual{
			EN: "Handle hot liquids carefully, keep children away from stoves.",
			HI: "गर्म तरल सावधानी से संभालें, बच्चों को चूल्हे से दूर रखें।",
		},
		Disclaimer: defaultDisclaimer,
	},
	{
		CanonicalID: "Cuts and Bleeding",
		DisplayName: kb.Bilingual{EN: "Cuts and Bleeding", HI: "कटना और खून बहना"},
		Description: kb.Bilingual{
			EN: "Small cuts break the skin and cause minor bleeding that usually stops with pressure.",
			HI: "छोटे कट त्वचा को काटते हैं और हल्का खून बहता है जो आमतौर पर दबाव से रुक जाता है।",
		},
		Symptoms: kb.Bilingual{
			EN: "Broken skin, bleeding, stinging pain around the wound.",
			HI: "कटी त्वचा, खून बहना, घाव के आसपास जलन वाला दर्द।",
		},
		FirstAid: kb.Bilingual{
			EN: "Press firmly with a clean cloth until bleeding stops, wash with clean water, cover with a sterile bandage.",
			HI: "साफ़ कपड़े से तब तक दबाएँ जब तक खून न रुके, साफ़ पानी से धोएँ, रोगाणुहीन पट्टी से ढकें।",
		},
		Prevention: kb.Bilingual{
			EN: "Handle sharp tools carefully, keep blades stored safely.",
			HI: "धारदार औज़ार सावधानी से चलाएँ, ब्लेड सुरक्षित रखें।",
		},
		Disclaimer: defaultDisclaimer,
	},
	{
		CanonicalID: "Sore Throat",
		DisplayName: kb.Bilingual{EN: "Sore Throat", HI: "गले में खराश"},
		Description: kb.Bilingual{
			EN: "A sore throat is pain or scratchiness in the throat, often from a cold or dry air.",
			HI: "गले में खराश गले का दर्द या चुभन है, जो अक्सर ज़ुकाम या सूखी हवा से होती है।",
		},
		Symptoms: kb.Bilingual{
			EN: "Pain when swallowing, scratchy voice, mild swelling in the throat.",
			HI: "निगलते समय दर्द, भारी आवाज़, गले में हल्की सूजन।",
		},
		FirstAid: kb.Bilingual{
			EN: "Gargle with warm salt water, drink warm fluids, rest the voice.",
			HI: "नमक के गुनगुने पानी से गरारे करें, गर्म तरल पिएँ, आवाज़ को आराम दें।",
		},
		Prevention: kb.Bilingual{
			EN: "Avoid cold drinks in winter, keep the throat covered, avoid shouting.",
			HI: "सर्दियों में ठंडे पेय से बचें, गला ढककर रखें, चिल्लाने से बचें।",
		},
		Disclaimer: defaultDisclaimer,
	},
}
