// Package seed carries the hand-curated catalog of Arabic root
// meanings and writes it into the root_meanings lookup table.
package seed

import "github.com/quranwbw/roots/pkg/types"

func str(v string) *string { return &v }

// Catalog is the curated set of root meanings, keyed by dash-joined
// root. Entries are upserted by root, so editing an entry here and
// re-running the seeder replaces the stored row.
var Catalog = []types.RootMeaning{
	{
		Root:            "ك-ف-ر",
		PrimaryMeaning:  "to cover, to conceal, to hide",
		ExtendedMeaning: str("Originally meant to cover something, like a farmer covering seeds with soil. Also means to be ungrateful (covering blessings)."),
		QuranUsage:      str("In the Quran, refers to rejecting or concealing the truth of Allah's signs. A kafir is one who 'covers' or denies the evident truth."),
		Notes:           str("In classical Arabic, a farmer was also called 'kafir' because he covers seeds. Night is called 'kafir' because it covers the day."),
	},
	{
		Root:            "ر-ح-م",
		PrimaryMeaning:  "mercy, compassion, womb",
		ExtendedMeaning: str("The root connects mercy with the womb (rahim), suggesting that divine mercy is like a mother's love - nurturing, protective, and unconditional."),
		QuranUsage:      str("Allah's names Al-Rahman and Al-Rahim both derive from this root. Rahman indicates all-encompassing mercy, Rahim indicates specific mercy for believers."),
		Notes:           str("The connection between 'womb' and 'mercy' shows how Arabic roots carry deep semantic relationships."),
	},
	{
		Root:            "س-م-و",
		PrimaryMeaning:  "to be high, to rise, name, sky",
		ExtendedMeaning: str("Connects the concepts of elevation, naming, and the heavens. A name (ism) elevates and distinguishes something."),
		QuranUsage:      str("Used for sky (sama'), names (ism), and elevation. 'Bismillah' uses this root - beginning with Allah's name that is most elevated."),
	},
	{
		Root:            "ع-ل-م",
		PrimaryMeaning:  "to know, knowledge, sign, world",
		ExtendedMeaning: str("Encompasses knowing, teaching, signs/marks, and the world (which is a sign of the Creator)."),
		QuranUsage:      str("Al-Alim (The All-Knowing) is one of Allah's names. 'Alameen' (worlds/universe) shares this root - the creation is a sign pointing to knowledge of the Creator."),
		Notes:           str("The word 'ulama' (scholars) and 'alam' (world/flag/sign) all share this root."),
	},
	{
		Root:            "ح-م-د",
		PrimaryMeaning:  "to praise, to thank, to commend",
		ExtendedMeaning: str("Praise that comes from recognizing inherent goodness and beauty, not just receiving benefit."),
		QuranUsage:      str("Al-Hamdulillah (all praise is for Allah) opens Surah Al-Fatihah. Muhammad and Ahmad (names of the Prophet) derive from this root."),
		Notes:           str("Unlike 'shukr' (gratitude for receiving), 'hamd' is praise for inherent qualities."),
	},
	{
		Root:            "أ-ل-ه",
		PrimaryMeaning:  "deity, god, to worship, to be bewildered",
		ExtendedMeaning: str("Originally implied being bewildered or seeking refuge, evolving to mean the one worthy of worship."),
		QuranUsage:      str("Allah is the proper name of God, combining 'al' (the) with 'ilah' (deity) - The One True God."),
		Notes:           str("The root suggests that humans naturally turn to a higher power in times of need."),
	},
	{
		Root:            "ص-ل-و",
		PrimaryMeaning:  "prayer, connection, supplication",
		ExtendedMeaning: str("Implies a close connection and turning towards. The physical movements of salah reflect this turning and connection."),
		QuranUsage:      str("Salah is not just ritual prayer but a direct connection with Allah. The word also means blessings (as in 'salawat' upon the Prophet)."),
	},
	{
		Root:            "ع-ب-د",
		PrimaryMeaning:  "to worship, to serve, servant, slave",
		ExtendedMeaning: str("Complete submission and service. A slave has no will against their master's will."),
		QuranUsage:      str("Ibadah (worship) means complete submission to Allah. 'Abd' (servant) is the highest title - Abdullah means 'servant of Allah'."),
		Notes:           str("True freedom in Islam comes through being a slave only to Allah, not to desires or other creations."),
	},
	{
		Root:            "ه-د-ي",
		PrimaryMeaning:  "to guide, guidance, gift",
		ExtendedMeaning: str("Leading someone gently to their destination. Also means a gift (something you guide towards someone)."),
		QuranUsage:      str("Al-Hadi is one of Allah's names. 'Ihdina al-sirat al-mustaqim' - Guide us to the straight path."),
		Notes:           str("Hidayah (guidance) is considered the greatest gift from Allah."),
	},
	{
		Root:            "ق-ر-ء",
		PrimaryMeaning:  "to read, to recite, to gather",
		ExtendedMeaning: str("Originally meant to gather or collect. Recitation gathers letters into words into meanings."),
		QuranUsage:      str("The Quran literally means 'the recitation' or 'that which is recited'. The first revelation was 'Iqra' - Read/Recite!"),
	},
	{
		Root:            "أ-م-ن",
		PrimaryMeaning:  "to be safe, security, faith, trust",
		ExtendedMeaning: str("Safety, security, and trust are interconnected. Faith (iman) provides inner security."),
		QuranUsage:      str("Iman (faith) provides security for the heart. A mu'min (believer) is one who has inner peace through faith. Amen comes from this root."),
		Notes:           str("The connection between faith and security shows that true peace comes from trust in Allah."),
	},
	{
		Root:            "ج-ن-ن",
		PrimaryMeaning:  "to cover, to hide, to be concealed",
		ExtendedMeaning: str("Anything hidden or concealed. Gardens hide what's inside with their foliage."),
		QuranUsage:      str("Jinn are hidden beings. Jannah (paradise) is a hidden garden. Janin (fetus) is hidden in the womb. Junun (madness) is when reason is hidden."),
		Notes:           str("Many seemingly different words share this root through the concept of being hidden."),
	},
	{
		Root:            "ن-و-ر",
		PrimaryMeaning:  "light, illumination, to enlighten",
		ExtendedMeaning: str("Physical and spiritual light. Knowledge and guidance are described as light."),
		QuranUsage:      str("Allah is described as the Light of the heavens and earth (Ayat al-Nur). The Quran is called a 'light' that guides from darkness."),
	},
	{
		Root:            "ظ-ل-م",
		PrimaryMeaning:  "darkness, injustice, oppression, to wrong",
		ExtendedMeaning: str("Darkness and injustice share a root - injustice obscures the light of truth and fairness."),
		QuranUsage:      str("Zulm (oppression/injustice) is putting something in the wrong place. Zulumat (darknesses) is the opposite of nur (light)."),
		Notes:           str("Shirk (associating partners with Allah) is called the greatest zulm because it misplaces worship."),
	},
	{
		Root:            "ش-ك-ر",
		PrimaryMeaning:  "to thank, gratitude, to appreciate",
		ExtendedMeaning: str("Recognizing and acknowledging blessings received. Implies action in response to blessings."),
		QuranUsage:      str("Ash-Shakur (The Most Appreciative) is one of Allah's names - He appreciates even small good deeds. Shukr is responding to blessings with gratitude."),
		Notes:           str("Different from hamd (praise) - shukr is specifically gratitude for blessings received."),
	},
	{
		Root:            "ت-و-ب",
		PrimaryMeaning:  "to return, to repent, to turn back",
		ExtendedMeaning: str("Repentance literally means 'returning' to Allah. Implies a journey away and coming back."),
		QuranUsage:      str("At-Tawwab (The Accepting of Repentance) is one of Allah's names. Tawbah is returning to Allah after straying."),
		Notes:           str("The door of tawbah is always open - one can always return."),
	},
	{
		Root:            "ذ-ك-ر",
		PrimaryMeaning:  "to remember, to mention, male",
		ExtendedMeaning: str("Remembrance, mention, and masculinity share this root. Dhikr keeps something present in the mind."),
		QuranUsage:      str("Dhikr (remembrance of Allah) is one of the most emphasized acts of worship. The Quran itself is called 'Al-Dhikr'."),
	},
	{
		Root:            "ف-ت-ح",
		PrimaryMeaning:  "to open, victory, conquest, to begin",
		ExtendedMeaning: str("Opening can be physical (door) or abstract (victory, beginning). Fatiha opens the Quran."),
		QuranUsage:      str("Al-Fattah (The Opener) is one of Allah's names. Surah Al-Fatiha 'opens' the Quran. Fath also means victory (Surah Al-Fath)."),
	},
	{
		Root:            "س-ل-م",
		PrimaryMeaning:  "peace, safety, submission, soundness",
		ExtendedMeaning: str("Peace comes through submission. Islam means submission (to Allah). Muslim is one who submits. Salam means peace."),
		QuranUsage:      str("Islam, Muslim, and Salam all share this root. True peace (salam) comes through submission (islam) to Allah."),
		Notes:           str("The greeting 'Assalamu Alaikum' means 'peace be upon you' - wishing safety and submission to Allah's will."),
	},
	{
		Root:            "ق-ل-ب",
		PrimaryMeaning:  "heart, to turn, to flip, to change",
		ExtendedMeaning: str("The heart is called 'qalb' because it constantly turns and changes states."),
		QuranUsage:      str("The heart (qalb) is the spiritual center that can turn towards or away from Allah. Seeking 'qalb saleem' (sound heart) is the goal."),
		Notes:           str("The Prophet (PBUH) would pray: 'O Turner of hearts, keep my heart firm on Your religion.'"),
	},
}
