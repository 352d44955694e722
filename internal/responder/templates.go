package responder

import "github.com/nyaysetu/legalchat/internal/lexicon"

// templates holds the canned English answers, one per category. They cite
// the current statutory framework (BNS/BNSS/BSA) and always end in
// concrete next steps, because this text is what users get when every
// generative backend is down.
var templates = map[lexicon.Category]string{
	lexicon.CategoryTenant: `**Tenant Rights in India**

**Key rights you have:**
1. **Right to peaceful enjoyment**: Your landlord cannot disturb your possession without proper notice
2. **Right to essential services**: Water, electricity and other essentials must be maintained
3. **Right to privacy**: The landlord cannot enter your premises without prior notice
4. **Protection from arbitrary eviction**: Eviction needs valid grounds and legal notice
5. **Right to fair rent**: Increases must follow the procedure in your state's law

**Important laws:**
- Rent Control Acts (vary by state)
- Transfer of Property Act, 1882
- Model Tenancy Act, 2021 (where adopted)

**If your rights are violated:**
1. Document everything (photos, messages, receipts)
2. Send a written legal notice to the landlord
3. File a complaint with the Rent Control Court
4. Contact the State Legal Services Authority for free legal aid

Laws vary by state. For specific cases, consult a local property lawyer.`,

	lexicon.CategoryFIR: `**Filing an FIR (First Information Report)**

**How to file:**
1. **Go to the nearest police station** where the incident occurred (a Zero FIR can be filed at any station)
2. **Give complete details**: date, time, location, what happened, people involved, witnesses
3. **Get a free copy**: under the Bharatiya Nagarik Suraksha Sanhita (BNSS), 2023 the police must give you a copy of the FIR at no cost
4. **Follow up** on the investigation status

**If the police refuse to register the FIR:**
1. Escalate in writing to the Superintendent of Police
2. File a complaint with the Magistrate under Section 175(3) BNSS
3. Approach the State Human Rights Commission

**Governing law:** Bharatiya Nyaya Sanhita (BNS), 2023 defines offences; BNSS, 2023 governs procedure.

**Emergency contacts:** Police 112, Women Helpline 181, Child Helpline 1098.

For serious offences, contact a criminal lawyer immediately.`,

	lexicon.CategoryArrest: `**Your Rights on Arrest or Detention**

**At the time of arrest:**
1. **Right to know the grounds** of arrest (Article 22, Constitution of India; BNSS, 2023)
2. **Right to inform a relative or friend** of the arrest and place of detention
3. **Right to a lawyer** of your choice, and to free legal aid if you cannot afford one
4. **Production before a Magistrate within 24 hours** of arrest
5. **Right against self-incrimination** (Article 20(3))
6. **Medical examination** on arrest and every 48 hours in custody
7. Women may not be arrested after sunset and before sunrise except in exceptional circumstances

**Bail:**
- For bailable offences, bail is a right
- For non-bailable offences, apply to the court; anticipatory bail is available under BNSS, 2023

**If rights are violated:** complain to the Magistrate, the State Human Rights Commission, or the State Legal Services Authority.

Consult a criminal lawyer as early as possible.`,

	lexicon.CategoryCybercrime: `**Cybercrime: Legal Remedies in India**

**Immediate steps if you are a victim:**
1. **Preserve evidence**: screenshots, URLs, transaction IDs, emails - do not delete anything
2. **Report online** at the National Cyber Crime Reporting Portal (cybercrime.gov.in) or call the helpline 1930
3. **For financial fraud**, inform your bank immediately to freeze the transaction
4. **File an FIR** at the nearest police station or cyber crime cell

**Governing law:**
- Information Technology Act, 2000 (as amended) - hacking, identity theft, obscene content
- Bharatiya Nyaya Sanhita (BNS), 2023 - cheating, extortion, criminal intimidation online
- Bharatiya Sakshya Adhiniyam (BSA), 2023 - admissibility of electronic evidence

**Common offences:** phishing and online fraud, identity theft, cyberstalking, sextortion, ransomware.

**Prevention:** use strong unique passwords, enable 2FA/MFA, never share OTPs.

Electronic evidence is time-sensitive. Report within hours, not days.`,

	lexicon.CategoryFamily: `**Family Law in India - Marriage, Divorce and Custody**

**Divorce:**
1. **Grounds**: cruelty, desertion, adultery, conversion, mental disorder, or mutual consent (the simplest route)
2. **Procedure**: petition in the Family Court, mandatory mediation, then decree

**Child custody:**
- The child's best interest is the deciding factor
- Joint custody and visitation rights are both available
- A child's preference is considered (typically above 9 years)

**Maintenance/alimony:**
- Spousal maintenance depends on income and needs
- Child maintenance continues to age 18 (longer if studying)
- Interim maintenance can be claimed during proceedings

**Important laws:** Hindu Marriage Act, 1955; Special Marriage Act, 1954; personal laws by religion; Protection of Women from Domestic Violence Act, 2005; Guardians and Wards Act, 1890.

Family law varies by personal law. Consult a family lawyer for your situation.`,

	lexicon.CategoryContract: `**Contract and Employment Law in India**

**A valid contract needs (Indian Contract Act, 1872):**
1. Offer and acceptance
2. Consideration
3. Competent parties (18+, sound mind)
4. Free consent (no coercion, fraud, or misrepresentation)
5. A lawful object

**Remedies for breach:**
1. **Damages** - monetary compensation for loss
2. **Specific performance** - the court orders the contract performed
3. **Injunction** - the court stops a violating act
4. **Rescission** - the contract is cancelled

**Employment matters:**
- Unpaid salary, wrongful termination, and notice-period disputes fall under labour law (Industrial Disputes Act, 1947 and state shops-and-establishments acts)
- Gratuity and provident fund have dedicated statutory claims

**What to do:** send a legal notice, attempt negotiation or mediation, then sue in the appropriate court. Keep every document and communication.

For complex disputes, consult a contract or labour lawyer.`,

	lexicon.CategoryConsumer: `**Consumer Rights in India**

**Your rights under the Consumer Protection Act, 2019:**
1. Right to safety
2. Right to information about products and services
3. Right to choose
4. Right to be heard
5. Right to redressal, including against e-commerce platforms

**Where to complain:**
- **District Commission** - claims up to ₹50 lakh
- **State Commission** - ₹50 lakh to ₹2 crore
- **National Commission** - above ₹2 crore
- Complaints can be filed online at edaakhil.nic.in

**Procedure:**
1. File the complaint with bills, receipts and correspondence
2. Pay the nominal fee
3. Attend hearings; many matters settle through mediation

**Time limit:** within 2 years of the cause of action.

Keep all receipts and written communication with the seller.`,

	lexicon.CategoryGeneral: `**General Legal Guidance for India**

**Your fundamental rights (Constitution of India):**
1. Right to Equality (Articles 14–18)
2. Right to Freedom (Articles 19–22)
3. Right against Exploitation (Articles 23–24)
4. Right to Constitutional Remedies (Article 32)

**The current statutory framework:**
- Bharatiya Nyaya Sanhita (BNS), 2023 - criminal law
- Bharatiya Nagarik Suraksha Sanhita (BNSS), 2023 - criminal procedure
- Bharatiya Sakshya Adhiniyam (BSA), 2023 - evidence

**Free help available:**
- Legal Services Authorities at district, state and national level provide free legal aid
- Lok Adalats resolve disputes quickly without court fees

**Emergency contacts:** Police 112, Legal Aid 15100, Women Helpline 181, Child Helpline 1098.

This is general information only. Always consult a qualified lawyer for specific legal advice.`,
}

// cyberPreventionGuidance is the safety carve-out text for cyber-hygiene
// questions that are not strictly legal.
const cyberPreventionGuidance = `Practical steps to prevent cybercrime:
- Use strong, unique passwords and a reputable password manager
- Enable 2FA/MFA everywhere (authenticator app or security key)
- Keep OS, browser, apps, and router firmware up to date
- Be phishing-smart: avoid unsolicited links/QRs/attachments; type important URLs yourself
- Prefer a mobile hotspot or trusted VPN over public Wi-Fi for sensitive actions
- Turn on bank/UPI/card transaction alerts; never share OTP/PIN
- Tighten social media privacy; limit personal data exposure
- Maintain 3-2-1 backups and test restores
If victimized: disconnect, run a full scan, change passwords, contact your bank, and report at cybercrime.gov.in (India) or call 1930.`

const cyberPreventionGuidanceHindi = `साइबर अपराध से बचाव के लिए व्यावहारिक कदम:
- मजबूत और अलग-अलग पासवर्ड रखें; पासवर्ड मैनेजर का उपयोग करें
- हर जगह 2FA/MFA सक्षम करें (ऑथेंटिकेटर ऐप/सिक्योरिटी की)
- सिस्टम, ब्राउज़र, ऐप्स और राउटर फर्मवेयर को अपडेट रखें
- संदिग्ध लिंक/QR/अटैचमेंट न खोलें; यूआरएल खुद टाइप करें
- सार्वजनिक Wi-Fi पर संवेदनशील काम न करें; जरूरत हो तो हॉटस्पॉट/VPN इस्तेमाल करें
- बैंक/UPI अलर्ट चालू रखें; अनजान कॉल/SMS/OTP न साझा करें
- सोशल मीडिया गोपनीयता सेटिंग्स सख्त रखें
- 3-2-1 बैकअप रखें और रिस्टोर टेस्ट करें
यदि धोखा हो जाए: नेटवर्क से डिस्कनेक्ट करें, पासवर्ड बदलें, बैंक को तुरंत सूचित करें, और 1930 या cybercrime.gov.in पर रिपोर्ट करें।`

// CyberPreventionGuidance returns the fixed prevention text, localized for
// Hindi and English elsewhere.
func CyberPreventionGuidance(language string) string {
	if isHindi(language) {
		return cyberPreventionGuidanceHindi
	}
	return cyberPreventionGuidance
}

func isHindi(language string) bool {
	return len(language) >= 2 && language[:2] == "hi"
}
